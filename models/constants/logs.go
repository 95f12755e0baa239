package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogKey           = "key"
	LogSubreddit     = "subreddit"
	LogSelector      = "selector"
	LogOutcome       = "outcome"
	LogPostID        = "postID"
	LogPostNumber    = "postNumber"
	LogAuthor        = "author"
	LogLevelFallback = zerolog.InfoLevel
)
