package observer

import "cryptogold-alerts/models/entities"

type EventType int

const (
	ArticlesEvent EventType = 1
	ErrorEvent    EventType = 2
)

type Event struct {
	E        EventType
	Articles []entities.Article
	Message  string
}

func NewArticlesEvent(articles []entities.Article) Event {
	return Event{E: ArticlesEvent, Articles: articles}
}

func NewErrorEvent(message string) Event {
	return Event{E: ErrorEvent, Message: message}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	Register(Observer)
	Notify(Event)
}
