package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/pkg/observer"
	"cryptogold-alerts/repositories/feedsources"
	"cryptogold-alerts/repositories/headlines"
	"cryptogold-alerts/utils/text"

	"github.com/go-co-op/gocron/v2"
	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	fetchAttempts   = 3
	cycleAttempts   = 3
	cycleRetryPause = 10 * time.Second
)

func New(scheduler gocron.Scheduler, sourceRepo feedsources.Repository, headlineRepo headlines.Repository) (*Impl, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = viper.GetString(constants.UserAgent)

	maxAge := viper.GetDuration(constants.ArticleMaxAge)
	interval := time.Duration(viper.GetInt(constants.FetchIntervalMinutes)) * time.Minute
	service := &Impl{
		feedParser:   fp,
		timeout:      time.Duration(viper.GetInt(constants.RSSTimeout)) * time.Second,
		maxAge:       maxAge,
		maxPerFeed:   viper.GetInt(constants.MaxArticlesPerFetch),
		maxPerCycle:  viper.GetInt(constants.MaxSentArticles),
		staleAfter:   5 * interval,
		sourceRepo:   sourceRepo,
		headlineRepo: headlineRepo,
		observers:    map[observer.Observer]struct{}{},
		seen:         cache.New(maxAge, 2*maxAge),
	}

	_, errJob := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { service.FetchAndPublish() }),
		gocron.WithName("Fetch and publish news"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if errJob != nil {
		return nil, errJob
	}

	_, errCleanupJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.CleanupCronTab), false),
		gocron.NewTask(func() { service.CleanupHeadlines() }),
		gocron.WithName("Clean up sent headlines"),
	)
	if errCleanupJob != nil {
		return nil, errCleanupJob
	}

	if service.sourceRepo.Count() == 0 {
		service.seedSources()
	}

	return service, nil
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

// FetchAndPublish runs one pipeline cycle, retrying the whole cycle a few
// times before reporting the failure to the chat.
func (service *Impl) FetchAndPublish() {
	var err error
	for attempt := 1; attempt <= cycleAttempts; attempt++ {
		err = service.runCycle()
		if err == nil {
			service.markCycle()
			return
		}

		log.Error().Err(err).
			Int(constants.LogAttempt, attempt).
			Msgf("News cycle failed")
		if attempt < cycleAttempts {
			time.Sleep(cycleRetryPause)
		}
	}

	service.notify(observer.NewErrorEvent(
		fmt.Sprintf("News fetch failed after %d attempts: %s", cycleAttempts, text.Truncate(err.Error(), 100))))
}

func (service *Impl) runCycle() error {
	log.Info().Msg("Starting news fetch cycle...")

	sources, err := service.sourceRepo.GetFeedSources()
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return ErrNoFeedSources
	}

	var articles []entities.Article
	for _, source := range sources {
		articles = append(articles, service.checkFeed(source)...)
	}

	log.Info().Int(constants.LogArticleNumber, len(articles)).Msgf("Articles fetched")
	if len(articles) == 0 {
		return nil
	}

	filtered := service.filterArticles(articles)
	if len(filtered) == 0 {
		log.Info().Msg("No relevant article found after filtering")
		return nil
	}

	service.notify(observer.NewArticlesEvent(filtered))
	for _, article := range filtered {
		service.markSent(article.Title)
	}

	log.Info().Int(constants.LogArticleNumber, len(filtered)).Msgf("Articles published")
	return nil
}

func (service *Impl) checkFeed(source entities.FeedSource) []entities.Article {
	log.Info().
		Str(constants.LogFeedURL, source.URL).
		Str(constants.LogFeedCategory, source.Category).
		Msgf("Reading feed source...")

	feed, err := service.readFeed(source.URL)
	if err != nil {
		log.Error().
			Err(err).
			Str(constants.LogFeedCategory, source.Category).
			Str(constants.LogFeedURL, source.URL).
			Msgf("Cannot fetch URL, source ignored")
		return nil
	}

	articles := service.parseArticles(feed, source)

	source.LastUpdate = time.Now().UTC()
	if errSave := service.sourceRepo.Save(source); errSave != nil {
		log.Error().Err(errSave).
			Str(constants.LogFeedName, source.Name).
			Msgf("Impossible to update feed source watermark, continuing")
	}

	log.Info().
		Str(constants.LogFeedCategory, source.Category).
		Str(constants.LogFeedURL, source.URL).
		Int(constants.LogFeedNumber, len(articles)).
		Msgf("Feed read")
	return articles
}

// readFeed fetches and parses one feed, with exponential backoff between
// attempts.
func (service *Impl) readFeed(url string) (*gofeed.Feed, error) {
	var lastErr error
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<attempt) * time.Second)
		}

		ctx, cancel := context.WithTimeout(context.Background(), service.timeout)
		feed, err := service.feedParser.ParseURLWithContext(url, ctx)
		cancel()
		if err == nil {
			return feed, nil
		}

		lastErr = err
		log.Warn().Err(err).
			Str(constants.LogFeedURL, url).
			Int(constants.LogAttempt, attempt+1).
			Msgf("Feed fetch failed")
	}

	return nil, lastErr
}

func (service *Impl) parseArticles(feed *gofeed.Feed, source entities.FeedSource) []entities.Article {
	var articles []entities.Article

	items := feed.Items
	if len(items) > service.maxPerFeed {
		items = items[:service.maxPerFeed]
	}

	for _, item := range items {
		published := publicationTime(item)
		if !published.IsZero() && time.Since(published) > service.maxAge {
			continue
		}

		article := entities.Article{
			Title:     text.Collapse(item.Title),
			Link:      strings.TrimSpace(item.Link),
			Summary:   text.CleanHTML(item.Description),
			Published: published,
			Category:  source.Category,
			Source:    sourceName(feed, source),
		}
		if article.Title == "" || article.Link == "" {
			continue
		}

		articles = append(articles, article)
	}

	return articles
}

// CleanupHeadlines trims the persisted dedup set to its configured maximum.
func (service *Impl) CleanupHeadlines() {
	log.Info().Msg("Performing weekly headline cleanup...")

	max := viper.GetInt(constants.MaxStoredHeadlines)
	if err := service.headlineRepo.Trim(max); err != nil {
		log.Error().Err(err).Msgf("Failed to trim sent headlines")
		return
	}

	log.Info().Msgf("Weekly cleanup completed")
}

// IsFresh reports whether a cycle succeeded recently enough for the
// application to be considered ready.
func (service *Impl) IsFresh() bool {
	last := service.LastCycle()
	return !last.IsZero() && time.Since(last) < service.staleAfter
}

func (service *Impl) LastCycle() time.Time {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return service.lastCycle
}

func (service *Impl) markCycle() {
	service.mu.Lock()
	service.lastCycle = time.Now().UTC()
	service.mu.Unlock()
}

func (service *Impl) markSent(title string) {
	service.seen.Set(text.Normalize(title), true, cache.DefaultExpiration)
	err := service.headlineRepo.Save(entities.SentHeadline{
		Title:           title,
		NormalizedTitle: text.Normalize(title),
		SentAt:          time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).
			Str(constants.LogArticleTitle, text.Truncate(title, 50)).
			Msgf("Impossible to record sent headline; it might be published again")
	}
}

func (service *Impl) notify(event observer.Event) {
	for o := range service.observers {
		o.OnNotify(event)
	}
}

func (service *Impl) seedSources() {
	for _, seed := range constants.GetDefaultFeedSources() {
		err := service.sourceRepo.Create(entities.FeedSource{
			Name:       seed.Name,
			Category:   seed.Category,
			URL:        seed.URL,
			LastUpdate: time.Now().AddDate(0, 0, -5),
		})
		if err != nil {
			log.Error().Err(err).
				Str(constants.LogFeedName, seed.Name).
				Msg("Error on save feed")
		}
	}
}

func publicationTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Time{}
}

func sourceName(feed *gofeed.Feed, source entities.FeedSource) string {
	if feed.Title != "" {
		return text.Collapse(feed.Title)
	}
	return text.ExtractDomain(source.URL)
}
