package constants

const (
	ExternalName = "Subreddit Tracker"
	InternalName = "subreddit-tracker"
	Version      = "1.0.0"
)
