package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogFeedURL       = "feedURL"
	LogFeedCategory  = "feedCategory"
	LogFeedName      = "feedName"
	LogFeedNumber    = "feedNumber"
	LogArticleTitle  = "articleTitle"
	LogArticleNumber = "articleNumber"
	LogChatID        = "chatID"
	LogCommand       = "cmd"
	LogUsername      = "username"
	LogLanguage      = "language"
	LogAttempt       = "attempt"
	LogLevelFallback = zerolog.InfoLevel
)
