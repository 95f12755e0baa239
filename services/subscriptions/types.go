package subscriptions

import (
	"context"
	"errors"
	"sync"

	settingsRepo "subreddit-tracker/repositories/settings"
	redditService "subreddit-tracker/services/reddit"
)

// Entry is one tracked subreddit subscription.
type Entry struct {
	Name    string
	Enabled bool
}

// Outcome classifies the result of validating a candidate subreddit name.
type Outcome int

const (
	OutcomeUnknownError Outcome = -1
	OutcomeSuccess      Outcome = 0
	OutcomeEmptyString  Outcome = 1
	OutcomeDuplicate    Outcome = 2
	OutcomeInvalidURL   Outcome = 3
	OutcomeNetworkError Outcome = 4
	OutcomeNoNewPosts   Outcome = 5
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmptyString:
		return "emptyString"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeInvalidURL:
		return "invalidURL"
	case OutcomeNetworkError:
		return "networkError"
	case OutcomeNoNewPosts:
		return "noNewPosts"
	default:
		return "unknownError"
	}
}

var ErrLengthMismatch = errors.New("stored names and enabled flags differ in length")

type Service interface {
	Entries() []Entry
	Add(name string, enabled bool) error
	Remove(index int) error
	SetEnabled(index int, enabled bool) error
	Selector() string
	Validate(ctx context.Context, name string) Outcome
}

type Impl struct {
	mu      sync.RWMutex
	entries []Entry
	repo    settingsRepo.Repository
	client  redditService.Client
}
