package news

import (
	"sort"
	"strings"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/utils/text"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	relevanceThreshold  = 0.1
	similarityThreshold = 0.85
	titleMatchWeight    = 2.0
	summaryMatchWeight  = 1.0
)

// filterArticles keeps relevant, unseen articles, best scored first, capped
// at the per-cycle maximum.
func (service *Impl) filterArticles(articles []entities.Article) []entities.Article {
	log.Info().Int(constants.LogArticleNumber, len(articles)).Msgf("Filtering articles...")

	var filtered []entities.Article
	for _, article := range articles {
		if service.isDuplicate(article.Title) {
			log.Debug().
				Str(constants.LogArticleTitle, text.Truncate(article.Title, 50)).
				Msgf("Skipping duplicate")
			continue
		}

		if !isRelevantSource(article) {
			continue
		}

		article.Relevance = relevanceScore(article)
		if article.Relevance < relevanceThreshold {
			continue
		}

		filtered = append(filtered, article)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Relevance > filtered[j].Relevance
	})

	if len(filtered) > service.maxPerCycle {
		filtered = filtered[:service.maxPerCycle]
	}

	// Intra-cycle duplicates: the same story often lands on several feeds.
	filtered = dropSimilar(filtered)

	log.Info().Int(constants.LogArticleNumber, len(filtered)).Msgf("Articles kept after filtering")
	return filtered
}

// isDuplicate checks the short-lived cache first, then the persisted set by
// exact title and finally by word-set similarity against recent headlines.
func (service *Impl) isDuplicate(title string) bool {
	normalized := text.Normalize(title)
	if _, found := service.seen.Get(normalized); found {
		return true
	}

	exists, err := service.headlineRepo.Exists(title)
	if err != nil {
		log.Error().Err(err).Msgf("Impossible to check sent headlines, article kept")
		return false
	}
	if exists {
		service.seen.Set(normalized, true, cache.DefaultExpiration)
		return true
	}

	recent, err := service.headlineRepo.RecentNormalizedTitles(service.maxPerFeed * 10)
	if err != nil {
		log.Error().Err(err).Msgf("Impossible to load recent headlines, article kept")
		return false
	}
	for _, sent := range recent {
		if text.SimilarityRatio(normalized, sent) > similarityThreshold {
			return true
		}
	}

	return false
}

func isRelevantSource(article entities.Article) bool {
	combined := strings.ToLower(article.Title + " " + article.Summary)
	for _, keyword := range constants.GetKeywords(article.Category) {
		if strings.Contains(combined, strings.ToLower(keyword)) {
			return true
		}
	}

	// Category-specific outlets publish on topic even when the headline
	// carries no keyword.
	source := strings.ToLower(article.Source)
	for _, trusted := range constants.GetTrustedSources(article.Category) {
		if strings.Contains(source, trusted) {
			return true
		}
	}

	return false
}

// relevanceScore weights keyword hits in the title above hits in the
// summary and boosts a fixed set of market-moving terms.
func relevanceScore(article entities.Article) float64 {
	title := strings.ToLower(article.Title)
	summary := strings.ToLower(article.Summary)
	combined := title + " " + summary

	score := 0.0
	for _, keyword := range constants.GetKeywords(article.Category) {
		keyword = strings.ToLower(keyword)
		score += float64(strings.Count(title, keyword)) * titleMatchWeight
		score += float64(strings.Count(summary, keyword)) * summaryMatchWeight
	}

	for term, weight := range constants.GetImportantTerms() {
		if strings.Contains(combined, term) {
			score += weight
		}
	}

	return score
}

func dropSimilar(articles []entities.Article) []entities.Article {
	var kept []entities.Article
	for _, article := range articles {
		duplicate := false
		for _, existing := range kept {
			if text.SimilarityRatio(text.Normalize(article.Title), text.Normalize(existing.Title)) > similarityThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, article)
		}
	}
	return kept
}
