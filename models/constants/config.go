package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	ExternalName = "CryptoGold Alerts"
	InternalName = "cryptogold-alerts"
	Version      = "1.0.0"

	ConfigFileName = ".env"

	// TELEGRAM BOT
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"

	// Chat receiving the alerts.
	TelegramChatID = "TELEGRAM_CHAT_ID"

	// Output language for alerts, 'en' or 'hi'.
	DefaultLanguage = "DEFAULT_LANGUAGE"

	// Minutes between two fetch cycles.
	FetchIntervalMinutes = "FETCH_INTERVAL_MINUTES"

	// Number of entries read per feed and per cycle.
	MaxArticlesPerFetch = "MAX_ARTICLES_PER_FETCH"

	// Number of alerts dispatched per cycle, best scored first.
	MaxSentArticles = "MAX_SENT_ARTICLES"

	// Size of the persisted sent-headline set.
	MaxStoredHeadlines = "MAX_STORED_HEADLINES"

	// Entries older than this are ignored. Duration type.
	ArticleMaxAge = "ARTICLE_MAX_AGE"

	// RSS fetch timeout in seconds.
	RSSTimeout = "RSS_TIMEOUT"

	// User agent sent on feed requests.
	UserAgent = "USER_AGENT"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Probe port.
	ProbePort = "PROBE_PORT"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Cron tab to the daily status report.
	DailyStatusCronTab = "DAILY_STATUS_CRON_TAB"

	// Cron tab to the sent-headline cleanup.
	CleanupCronTab = "CLEANUP_CRON_TAB"

	defaultTelegramBotToken     = ""
	defaultTelegramChatID       = int64(0)
	defaultLanguage             = LanguageEnglish
	defaultFetchIntervalMinutes = 2
	defaultMaxArticlesPerFetch  = 15
	defaultMaxSentArticles      = 6
	defaultMaxStoredHeadlines   = 50
	defaultArticleMaxAge        = 6 * time.Hour
	defaultRSSTimeout           = 30
	defaultUserAgent            = InternalName + "/" + Version
	defaultSqliteURL            = "cryptogold-alerts.db"
	defaultProbePort            = 9090
	defaultHealthCronTab        = "* * * * *"
	defaultDailyStatusCronTab   = "0 9 * * *"
	defaultCleanupCronTab       = "0 2 * * 0"
	defaultLogLevel             = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		TelegramBotToken:     defaultTelegramBotToken,
		TelegramChatID:       defaultTelegramChatID,
		DefaultLanguage:      defaultLanguage,
		FetchIntervalMinutes: defaultFetchIntervalMinutes,
		MaxArticlesPerFetch:  defaultMaxArticlesPerFetch,
		MaxSentArticles:      defaultMaxSentArticles,
		MaxStoredHeadlines:   defaultMaxStoredHeadlines,
		ArticleMaxAge:        defaultArticleMaxAge,
		RSSTimeout:           defaultRSSTimeout,
		UserAgent:            defaultUserAgent,
		SqliteURL:            defaultSqliteURL,
		LogLevel:             defaultLogLevel.String(),
		ProbePort:            defaultProbePort,
		HealthCronTab:        defaultHealthCronTab,
		DailyStatusCronTab:   defaultDailyStatusCronTab,
		CleanupCronTab:       defaultCleanupCronTab,
	}
}
