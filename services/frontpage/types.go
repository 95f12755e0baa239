package frontpage

import (
	"subreddit-tracker/pkg/observer"
	redditService "subreddit-tracker/services/reddit"
	subscriptionsService "subreddit-tracker/services/subscriptions"

	"github.com/patrickmn/go-cache"
)

type Service interface {
	RegisterObserver(o observer.Observer)
	PollNewPosts() error
}

type Impl struct {
	subscriptions subscriptionsService.Service
	client        redditService.Client
	seen          *cache.Cache
	observers     map[observer.Observer]struct{}
}
