package digest

import (
	"subreddit-tracker/models/constants"
	"subreddit-tracker/pkg/observer"
	"subreddit-tracker/utils/dates"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

func New() *Impl {
	return &Impl{}
}

// OnNotify logs one line per newly seen post.
func (service *Impl) OnNotify(event observer.Event) {
	if event.E != observer.PostEvent || event.Post == nil {
		return
	}

	log.Info().
		Str(constants.LogSubreddit, event.Post.Subreddit).
		Str(constants.LogAuthor, event.Post.Author).
		Str(constants.LogPostID, event.Post.Name).
		Msgf("%s (%s)", event.Post.Title, humanize.Time(dates.FromUnixFloat(event.Post.CreatedUTC)))
}
