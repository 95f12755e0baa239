package insights

import (
	"fmt"
	"net/http"

	"subreddit-tracker/models/constants"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Probes interface {
	ListenAndServe()
}

type Impl struct {
	port    int
	isReady func() bool
}

func NewProbes(isReady func() bool) *Impl {
	return &Impl{
		port:    viper.GetInt(constants.ProbePort),
		isReady: isReady,
	}
}

// ListenAndServe exposes /probe/live and /probe/ready in the background.
func (probes *Impl) ListenAndServe() {
	mux := http.NewServeMux()
	mux.HandleFunc("/probe/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/probe/ready", func(w http.ResponseWriter, _ *http.Request) {
		if probes.isReady() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	addr := fmt.Sprintf(":%d", probes.port)
	log.Info().Msgf("Probes listening on %s", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msgf("Probe endpoint stopped")
		}
	}()
}
