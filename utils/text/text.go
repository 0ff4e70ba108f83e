package text

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"cryptogold-alerts/models/constants"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	punctRegex      = regexp.MustCompile(`[^\w\s]`)
)

// CleanHTML strips markup from a feed summary and collapses whitespace.
func CleanHTML(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return Collapse(raw)
	}

	return Collapse(doc.Text())
}

// Collapse trims and squeezes runs of whitespace to a single space.
func Collapse(raw string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(raw), " ")
}

// Normalize lowercases a title and drops punctuation so that reworded
// duplicates compare equal.
func Normalize(title string) string {
	return Collapse(punctRegex.ReplaceAllString(strings.ToLower(title), ""))
}

// SimilarityRatio computes the Jaccard similarity of the word sets of two
// strings, in [0, 1].
func SimilarityRatio(a string, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			intersection++
		}
	}

	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

// Truncate cuts a string to at most max runes, ellipsis included.
func Truncate(raw string, max int) string {
	runes := []rune(raw)
	if len(runes) <= max {
		return raw
	}
	if max < 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// ExtractDomain returns the host of a URL without its www prefix.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return "Unknown"
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "Unknown"
	}

	return strings.ToLower(strings.TrimPrefix(parsed.Host, "www."))
}

// FormatAmount renders a monetary amount with the numbering conventions of
// the given language (lakh/crore for Hindi, K/M/B for English).
func FormatAmount(amount float64, language string) string {
	if language == constants.LanguageHindi {
		switch {
		case amount >= 1e7:
			return fmt.Sprintf("₹%.2f करोड़", amount/1e7)
		case amount >= 1e5:
			return fmt.Sprintf("₹%.2f लाख", amount/1e5)
		default:
			return "₹" + humanize.CommafWithDigits(amount, 2)
		}
	}

	switch {
	case amount >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("$%.2fK", amount/1e3)
	default:
		return "$" + humanize.CommafWithDigits(amount, 2)
	}
}

func wordSet(raw string) map[string]struct{} {
	words := map[string]struct{}{}
	for _, word := range strings.Fields(raw) {
		words[word] = struct{}{}
	}
	return words
}
