package telegram

import (
	"fmt"
	"time"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/pkg/observer"
	newsService "cryptogold-alerts/services/news"
	"cryptogold-alerts/utils/dates"
	"cryptogold-alerts/utils/text"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/go-co-op/gocron/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	sendAttempts    = 3
	sendRetryPause  = 2 * time.Second
	alertSendPause  = 1 * time.Second
	latestAlertsKey = "latest_alerts"
)

func New(scheduler gocron.Scheduler, token string, chatID int64, news newsService.Service) (*Impl, error) {
	if token == "" {
		return &Impl{}, ErrTokenIsMissing
	}
	if chatID == 0 {
		return &Impl{}, ErrChatIDIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return &Impl{}, ErrBotNotInitialized
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Warn().Msg("an error occurred while handling update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})

	service := Impl{
		bot:       b,
		chatID:    chatID,
		language:  viper.GetString(constants.DefaultLanguage),
		news:      news,
		cache:     cache.New(24*time.Hour, 48*time.Hour),
		startedAt: time.Now().UTC(),
	}
	dispatcher.AddHandler(handlers.NewCommand("start", service.startCmd))
	dispatcher.AddHandler(handlers.NewCommand("help", service.helpCmd))
	dispatcher.AddHandler(handlers.NewCommand("status", service.statusCmd))
	dispatcher.AddHandler(handlers.NewCommand("latest", service.latestCmd))
	dispatcher.AddHandler(handlers.NewCommand("", service.unknownCmd))

	service.updater = ext.NewUpdater(dispatcher, nil)

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.DailyStatusCronTab), false),
		gocron.NewTask(func() { service.sendDailyStatus() }),
		gocron.WithName("Send daily status report"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) ListenAndDispatch() error {
	err := service.updater.StartPolling(service.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return ErrFailedToStartListening
	}

	service.updater.Idle()
	return nil
}

// OnNotify receives pipeline events: filtered article batches to dispatch
// and cycle failures to surface in the chat.
func (service *Impl) OnNotify(e observer.Event) {
	switch e.E {
	case observer.ArticlesEvent:
		service.sendNewsAlerts(e.Articles)
	case observer.ErrorEvent:
		service.SendErrorNotification(e.Message)
	}
}

func (service *Impl) NotifyStartup() {
	service.SendStatusUpdate(constants.GetTranslation("bot_started", service.language))
}

func (service *Impl) SendStatusUpdate(message string) {
	header := constants.GetTranslation("status_update", service.language)
	service.sendMessage(service.chatID, fmt.Sprintf("ℹ️ %s\n\n%s", header, message))
}

func (service *Impl) SendErrorNotification(message string) {
	header := constants.GetTranslation("error_notification", service.language)
	service.sendMessage(service.chatID, fmt.Sprintf("⚠️ %s\n\n🔧 %s", header, message))
}

func (service *Impl) sendNewsAlerts(articles []entities.Article) {
	if len(articles) == 0 {
		log.Info().Msg("No article to send")
		return
	}

	service.sendMessage(service.chatID, buildHeaderMessage(articles, service.language))

	sent := 0
	for _, article := range articles {
		message := formatArticleMessage(article, service.language)
		if service.sendMessage(service.chatID, message) {
			sent++
			log.Info().
				Str(constants.LogArticleTitle, text.Truncate(article.Title, 50)).
				Msgf("Sent alert")
		} else {
			log.Error().
				Str(constants.LogArticleTitle, text.Truncate(article.Title, 50)).
				Msgf("Failed to send alert")
		}

		// Telegram throttles bursts towards a single chat.
		time.Sleep(alertSendPause)
	}

	service.cache.Set(latestAlertsKey, articles, cache.NoExpiration)
	log.Info().Int(constants.LogArticleNumber, sent).Msgf("News cycle alerts sent")
}

func (service *Impl) sendMessage(chatID int64, message string) bool {
	opts := &gotgbot.SendMessageOpts{
		ParseMode:          "HTML",
		LinkPreviewOptions: &gotgbot.LinkPreviewOptions{IsDisabled: true},
	}

	var err error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		_, err = service.bot.SendMessage(chatID, message, opts)
		if err == nil {
			return true
		}

		log.Warn().Err(err).
			Int64(constants.LogChatID, chatID).
			Int(constants.LogAttempt, attempt).
			Msgf("Message send failed")
		if attempt < sendAttempts {
			time.Sleep(time.Duration(attempt) * sendRetryPause)
		}
	}

	return false
}

func (service *Impl) sendDailyStatus() {
	log.Info().Msg("Send daily status report")

	lang := service.language
	message := constants.GetTranslation("daily_status", lang) + "\n"
	message += fmt.Sprintf("⏰ %s\n", dates.Timestamp(time.Now()))
	message += fmt.Sprintf("🔄 %s: %d %s\n",
		constants.GetTranslation("fetch_interval", lang),
		viper.GetInt(constants.FetchIntervalMinutes),
		constants.GetTranslation("minutes", lang))
	message += fmt.Sprintf("📰 %s: %d\n",
		constants.GetTranslation("max_articles", lang),
		viper.GetInt(constants.MaxArticlesPerFetch))
	message += fmt.Sprintf("🗣️ %s: %s", constants.GetTranslation("language", lang), lang)

	if lastCycle := service.news.LastCycle(); !lastCycle.IsZero() {
		message += fmt.Sprintf("\n✅ Last cycle: %s", dates.FormatRelative(lastCycle, lang))
	}

	service.SendStatusUpdate(message)
}

func (service *Impl) startCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "start").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.sendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeWelcome))
	return nil
}

func (service *Impl) helpCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "help").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.sendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeHelp))
	return nil
}

func (service *Impl) statusCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "status").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")

	message := fmt.Sprintf("🤖 <b>%s</b> v%s\n", constants.ExternalName, constants.Version)
	message += fmt.Sprintf("⏱ Up since %s\n", dates.FormatRelative(service.startedAt, service.language))
	if lastCycle := service.news.LastCycle(); lastCycle.IsZero() {
		message += "⏳ No news cycle has completed yet"
	} else {
		message += fmt.Sprintf("✅ Last news cycle: %s", dates.FormatRelative(lastCycle, service.language))
	}

	service.sendMessage(ctx.EffectiveChat.Id, message)
	return nil
}

func (service *Impl) latestCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "latest").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")

	cached, found := service.cache.Get(latestAlertsKey)
	if !found {
		service.sendMessage(ctx.EffectiveChat.Id, "😴 No alert has been sent yet. Stay tuned!")
		return nil
	}

	articles := cached.([]entities.Article)
	service.sendMessage(ctx.EffectiveChat.Id, buildHeaderMessage(articles, service.language))
	for _, article := range articles {
		service.sendMessage(ctx.EffectiveChat.Id, formatArticleMessage(article, service.language))
		time.Sleep(alertSendPause)
	}
	return nil
}

func (service *Impl) unknownCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "unknown").Str(constants.LogUsername, ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.sendMessage(ctx.EffectiveChat.Id, getGenericErrorMessage())
	return nil
}
