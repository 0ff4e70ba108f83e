package telegram

import (
	"strings"
	"testing"
	"time"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
)

func TestFormatArticleMessage(t *testing.T) {
	article := entities.Article{
		Title:     "Bitcoin surges to record high",
		Link:      "https://example.com/btc",
		Summary:   "The crypto market rallies hard.",
		Published: time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC),
		Category:  constants.CategoryCrypto,
		Source:    "CoinDesk",
	}

	message := formatArticleMessage(article, constants.LanguageEnglish)

	if !strings.Contains(message, "🪙 <b>Bitcoin surges to record high</b>") {
		t.Errorf("expected bold title with crypto emoji, got %q", message)
	}
	if !strings.Contains(message, "🕐 March 07, 2025 at 14:30") {
		t.Errorf("expected localized timestamp, got %q", message)
	}
	if !strings.Contains(message, "The crypto market rallies hard.") {
		t.Errorf("expected summary, got %q", message)
	}
	if !strings.Contains(message, "<a href='https://example.com/btc'>Read More</a>") {
		t.Errorf("expected read-more link, got %q", message)
	}
}

func TestFormatArticleMessage_SanitizesTitle(t *testing.T) {
	article := entities.Article{
		Title:    "🚀 Gold's price & more <spikes>",
		Link:     "https://example.com/gold",
		Category: constants.CategoryGold,
		Source:   "Kitco",
	}

	message := formatArticleMessage(article, constants.LanguageEnglish)

	if !strings.Contains(message, "🥇 <b>Golds price more spikes</b>") {
		t.Errorf("expected sanitized title, got %q", message)
	}
}

func TestFormatArticleMessage_TruncatesLongSummary(t *testing.T) {
	article := entities.Article{
		Title:    "Bitcoin update",
		Link:     "https://example.com/btc",
		Summary:  strings.Repeat("a", 600),
		Category: constants.CategoryCrypto,
		Source:   "CoinDesk",
	}

	message := formatArticleMessage(article, constants.LanguageEnglish)

	if strings.Contains(message, strings.Repeat("a", 501)) {
		t.Error("expected summary to be truncated at 500 runes")
	}
	if !strings.Contains(message, "...") {
		t.Error("expected ellipsis on truncated summary")
	}
}

func TestFormatArticleMessage_HindiTimestamp(t *testing.T) {
	article := entities.Article{
		Title:     "Gold rally",
		Link:      "https://example.com/gold",
		Published: time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC),
		Category:  constants.CategoryGold,
		Source:    "Kitco",
	}

	message := formatArticleMessage(article, constants.LanguageHindi)

	if !strings.Contains(message, "🕐 07/03/2025 14:30") {
		t.Errorf("expected hindi timestamp, got %q", message)
	}
	if !strings.Contains(message, "और पढ़ें") {
		t.Errorf("expected hindi read-more label, got %q", message)
	}
}

func TestBuildHeaderMessage(t *testing.T) {
	articles := []entities.Article{
		{Title: "a", Category: constants.CategoryCrypto},
		{Title: "b", Category: constants.CategoryCrypto},
		{Title: "c", Category: constants.CategoryGold},
	}

	header := buildHeaderMessage(articles, constants.LanguageEnglish)

	if !strings.Contains(header, "🚨 Latest Market News Alert") {
		t.Errorf("expected alert header, got %q", header)
	}
	if !strings.Contains(header, "Cryptocurrency: 2 | Gold Market: 1") {
		t.Errorf("expected category counts, got %q", header)
	}
}
