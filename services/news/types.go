package news

import (
	"errors"
	"sync"
	"time"

	"cryptogold-alerts/pkg/observer"
	"cryptogold-alerts/repositories/feedsources"
	"cryptogold-alerts/repositories/headlines"

	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"
)

var ErrNoFeedSources = errors.New("no feed source is registered")

type Service interface {
	RegisterObserver(o observer.Observer)
	FetchAndPublish()
	CleanupHeadlines()
	IsFresh() bool
	LastCycle() time.Time
}

type Impl struct {
	feedParser  *gofeed.Parser
	timeout     time.Duration
	maxAge      time.Duration
	maxPerFeed  int
	maxPerCycle int
	staleAfter  time.Duration

	sourceRepo   feedsources.Repository
	headlineRepo headlines.Repository
	observers    map[observer.Observer]struct{}

	// Fast path of the dedup set; keys are normalized titles.
	seen *cache.Cache

	mu        sync.RWMutex
	lastCycle time.Time
}
