package application

import (
	"subreddit-tracker/services/frontpage"
	"subreddit-tracker/services/health"
	"subreddit-tracker/services/subscriptions"
	"subreddit-tracker/utils/databases"
	"subreddit-tracker/utils/insights"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler            gocron.Scheduler
	probes               insights.Probes
	subscriptionsService subscriptions.Service
	frontpageService     frontpage.Service
	healthService        health.Service
	db                   databases.SqlConnection
}
