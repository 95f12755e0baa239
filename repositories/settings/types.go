package settings

import (
	"errors"

	"subreddit-tracker/utils/databases"
)

// Storage keys mirrored from the original client application; both values
// are JSON arrays, index-aligned with each other.
const (
	NamesKey   = "subreddits"
	EnabledKey = "enabledSubreddits"
)

var ErrNotSeeded = errors.New("setting key is missing from storage")

type Repository interface {
	Names() ([]string, error)
	SaveNames(names []string) error
	Enabled() ([]bool, error)
	SaveEnabled(flags []bool) error
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
