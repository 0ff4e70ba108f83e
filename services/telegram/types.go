package telegram

import (
	"errors"
	"time"

	newsService "cryptogold-alerts/services/news"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/patrickmn/go-cache"
)

type MessageType int

const (
	MessageTypeUnknown MessageType = -1
	MessageTypeWelcome MessageType = 1
	MessageTypeHelp    MessageType = 2
)

var (
	ErrTokenIsMissing         = errors.New("telegram token is missing")
	ErrChatIDIsMissing        = errors.New("telegram chat ID is missing")
	ErrBotNotInitialized      = errors.New("telegram bot is not ready yet")
	ErrFailedToStartListening = errors.New("telegram bot can't start to listen command")
)

type Service interface {
	ListenAndDispatch() error
	NotifyStartup()
	SendStatusUpdate(message string)
	SendErrorNotification(message string)
}

type Impl struct {
	bot       *gotgbot.Bot
	updater   *ext.Updater
	chatID    int64
	language  string
	news      newsService.Service
	cache     *cache.Cache
	startedAt time.Time
}
