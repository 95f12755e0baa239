package frontpage

import (
	"context"

	"subreddit-tracker/models/constants"
	"subreddit-tracker/pkg/observer"
	redditService "subreddit-tracker/services/reddit"
	subscriptionsService "subreddit-tracker/services/subscriptions"

	"github.com/go-co-op/gocron/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler,
	subscriptions subscriptionsService.Service,
	client redditService.Client) (*Impl, error) {
	ttl := viper.GetDuration(constants.SeenCache)
	service := &Impl{
		subscriptions: subscriptions,
		client:        client,
		seen:          cache.New(ttl, 2*ttl),
	}
	service.observers = map[observer.Observer]struct{}{}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.FrontpageCronTab), true),
		gocron.NewTask(func() { service.PollNewPosts() }),
		gocron.WithName("Poll frontpage"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

// PollNewPosts fetches the combined "new" listing for the currently enabled
// selector and notifies observers once per post fullname. A failed tick is
// logged and dropped; the next cron run starts fresh.
func (service *Impl) PollNewPosts() error {
	selector := service.subscriptions.Selector()
	if selector == "" {
		log.Debug().Msg("No enabled subreddit, skipping frontpage poll")
		return nil
	}

	listing, err := service.client.NewPosts(context.Background(), selector)
	if err != nil {
		log.Error().Err(err).
			Str(constants.LogSelector, selector).
			Msgf("Cannot fetch frontpage listing")
		return err
	}

	published := 0
	for _, child := range listing.Data.Children {
		post := child.Data
		if _, found := service.seen.Get(post.Name); found {
			continue
		}
		service.seen.Set(post.Name, struct{}{}, cache.DefaultExpiration)

		service.notify(observer.NewPostEvent(&post))
		published++
	}

	log.Info().
		Str(constants.LogSelector, selector).
		Int(constants.LogPostNumber, published).
		Msgf("Frontpage poll done")

	return nil
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}
