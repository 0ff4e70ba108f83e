package application

import (
	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
	feedsourcesRepo "cryptogold-alerts/repositories/feedsources"
	headlinesRepo "cryptogold-alerts/repositories/headlines"
	"cryptogold-alerts/services/health"
	newsService "cryptogold-alerts/services/news"
	telegramService "cryptogold-alerts/services/telegram"
	"cryptogold-alerts/utils/databases"
	"cryptogold-alerts/utils/insights"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.FeedSource{}, &entities.SentHeadline{})
	if errMigration != nil {
		return nil, errMigration
	}

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	sourceRepo := feedsourcesRepo.New(db)
	headlineRepo := headlinesRepo.New(db)

	news, errNews := newsService.New(scheduler, sourceRepo, headlineRepo)
	if errNews != nil {
		return nil, errNews
	}

	telegram, errTg := telegramService.New(
		scheduler,
		viper.GetString(constants.TelegramBotToken),
		viper.GetInt64(constants.TelegramChatID),
		news,
	)
	if errTg != nil {
		return nil, errTg
	}

	healthSvc, errHealth := health.New(scheduler)
	if errHealth != nil {
		return nil, errHealth
	}

	news.RegisterObserver(telegram)
	probes := insights.NewProbes(db.IsConnected, news.IsFresh)

	return &Impl{
		scheduler:       scheduler,
		healthService:   healthSvc,
		newsService:     news,
		telegramService: telegram,
		db:              db,
		probes:          probes,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	go func() {
		if err := app.telegramService.ListenAndDispatch(); err != nil {
			log.Error().Err(err).Msg("Telegram polling stopped")
		}
	}()

	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	app.telegramService.NotifyStartup()
	go app.newsService.FetchAndPublish()

	app.probes.ListenAndServe()
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
