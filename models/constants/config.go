package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ConfigFileName = ".env"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Probe port.
	ProbePort = "PROBE_PORT"

	// Base URL of the Reddit API, overridable for tests.
	RedditBaseURL = "REDDIT_BASE_URL"

	// User agent sent on every listing request; Reddit throttles the default one.
	RedditUserAgent = "REDDIT_USER_AGENT"

	// HTTP client timeout on listing requests. Duration type.
	RedditTimeout = "REDDIT_TIMEOUT"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Cron tab to the frontpage poll.
	FrontpageCronTab = "FRONTPAGE_CRON_TAB"

	// How long a post fullname stays in the seen cache. Duration type.
	SeenCache = "SEEN_CACHE"

	defaultProbePort        = 9090
	defaultSqliteURL        = "subreddit-tracker.db"
	defaultRedditBaseURL    = "https://www.reddit.com"
	defaultRedditUserAgent  = "subreddit-tracker:v1 (by /u/subreddit-tracker)"
	defaultRedditTimeout    = 15 * time.Second
	defaultHealthCrontab    = "* * * * *"
	defaultFrontpageCronTab = "*/10 * * * *"
	defaultSeenCache        = 24 * time.Hour
	defaultLogLevel         = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		ProbePort:        defaultProbePort,
		SqliteURL:        defaultSqliteURL,
		LogLevel:         defaultLogLevel.String(),
		RedditBaseURL:    defaultRedditBaseURL,
		RedditUserAgent:  defaultRedditUserAgent,
		RedditTimeout:    defaultRedditTimeout,
		HealthCronTab:    defaultHealthCrontab,
		FrontpageCronTab: defaultFrontpageCronTab,
		SeenCache:        defaultSeenCache,
	}
}
