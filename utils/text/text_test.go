package text_test

import (
	"strings"
	"testing"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/utils/text"
)

func TestCleanHTML(t *testing.T) {
	raw := "<p>Bitcoin <b>surges</b> past\n\n $100k</p>"
	got := text.CleanHTML(raw)
	if got != "Bitcoin surges past $100k" {
		t.Errorf("expected 'Bitcoin surges past $100k', got %q", got)
	}

	if got := text.CleanHTML(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	got := text.Normalize("  Bitcoin Surges, Again!  ")
	if got != "bitcoin surges again" {
		t.Errorf("expected 'bitcoin surges again', got %q", got)
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := text.SimilarityRatio("bitcoin hits record high", "bitcoin hits record high"); got != 1.0 {
		t.Errorf("expected 1.0 for identical strings, got %f", got)
	}

	if got := text.SimilarityRatio("bitcoin hits record high", "gold falls on inflation data"); got != 0.0 {
		t.Errorf("expected 0.0 for disjoint strings, got %f", got)
	}

	// 4 shared words out of a union of 5.
	got := text.SimilarityRatio("bitcoin hits record high", "bitcoin hits record high today")
	if got < 0.79 || got > 0.81 {
		t.Errorf("expected ~0.8, got %f", got)
	}

	if got := text.SimilarityRatio("", "bitcoin"); got != 0.0 {
		t.Errorf("expected 0.0 for empty input, got %f", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := text.Truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	got := text.Truncate(strings.Repeat("a", 20), 10)
	if got != strings.Repeat("a", 7)+"..." {
		t.Errorf("unexpected truncation: %q", got)
	}
	if len([]rune(got)) != 10 {
		t.Errorf("expected 10 runes, got %d", len([]rune(got)))
	}
}

func TestExtractDomain(t *testing.T) {
	if got := text.ExtractDomain("https://www.coindesk.com/markets/article"); got != "coindesk.com" {
		t.Errorf("expected 'coindesk.com', got %q", got)
	}

	if got := text.ExtractDomain(""); got != "Unknown" {
		t.Errorf("expected 'Unknown', got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := text.FormatAmount(1500, constants.LanguageEnglish); got != "$1.50K" {
		t.Errorf("expected '$1.50K', got %q", got)
	}

	if got := text.FormatAmount(2.5e9, constants.LanguageEnglish); got != "$2.50B" {
		t.Errorf("expected '$2.50B', got %q", got)
	}

	if got := text.FormatAmount(2e5, constants.LanguageHindi); got != "₹2.00 लाख" {
		t.Errorf("expected '₹2.00 लाख', got %q", got)
	}
}
