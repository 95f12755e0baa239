package digest

import "subreddit-tracker/pkg/observer"

type Service interface {
	OnNotify(observer.Event)
}

type Impl struct {
}
