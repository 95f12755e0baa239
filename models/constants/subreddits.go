package constants

type DefaultSubreddit struct {
	Name    string
	Enabled bool
}

// Seed list written to storage on first run; the subscription manager
// itself never invents defaults.
func GetDefaultSubreddits() []DefaultSubreddit {
	return []DefaultSubreddit{
		{Name: "AskReddit", Enabled: true},
		{Name: "announcements", Enabled: false},
		{Name: "worldnews", Enabled: true},
	}
}
