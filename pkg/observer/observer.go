package observer

import redditService "subreddit-tracker/services/reddit"

type EventType int

const (
	PostEvent EventType = 1
)

type Event struct {
	E    EventType
	Post *redditService.Post
}

func NewPostEvent(post *redditService.Post) Event {
	return Event{Post: post, E: PostEvent}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	Register(Observer)
	Notify(Event)
}
