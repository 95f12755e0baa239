package application

import (
	"subreddit-tracker/models/constants"
	"subreddit-tracker/models/entities"
	settingsRepo "subreddit-tracker/repositories/settings"
	digestService "subreddit-tracker/services/digest"
	frontpageService "subreddit-tracker/services/frontpage"
	healthService "subreddit-tracker/services/health"
	redditService "subreddit-tracker/services/reddit"
	subscriptionsService "subreddit-tracker/services/subscriptions"
	"subreddit-tracker/utils/databases"
	"subreddit-tracker/utils/insights"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Setting{})
	if errMigration != nil {
		return nil, errMigration
	}

	probes := insights.NewProbes(db.IsConnected)

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	setRepo := settingsRepo.New(db)

	// The subscription manager refuses to start on unseeded storage, so the
	// defaults are written here, once, before it is constructed.
	if setRepo.Count() == 0 {
		if errSeed := seedDefaults(setRepo); errSeed != nil {
			return nil, errSeed
		}
		log.Info().Msgf("Seeded default subscription list")
	}

	redditClient := redditService.New()

	subscriptions, errSubs := subscriptionsService.New(setRepo, redditClient)
	if errSubs != nil {
		return nil, errSubs
	}

	frontpage, errFrontpage := frontpageService.New(scheduler, subscriptions, redditClient)
	if errFrontpage != nil {
		return nil, errFrontpage
	}

	health, errHealth := healthService.New(scheduler)
	if errHealth != nil {
		return nil, errHealth
	}

	frontpage.RegisterObserver(digestService.New())

	return &Impl{
		scheduler:            scheduler,
		probes:               probes,
		subscriptionsService: subscriptions,
		frontpageService:     frontpage,
		healthService:        health,
		db:                   db,
	}, nil
}

func seedDefaults(repo settingsRepo.Repository) error {
	defaults := constants.GetDefaultSubreddits()

	names := make([]string, 0, len(defaults))
	flags := make([]bool, 0, len(defaults))
	for _, subreddit := range defaults {
		names = append(names, subreddit.Name)
		flags = append(flags, subreddit.Enabled)
	}

	if err := repo.SaveNames(names); err != nil {
		return err
	}
	return repo.SaveEnabled(flags)
}

func (app *Impl) Run() {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	app.probes.ListenAndServe()
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
