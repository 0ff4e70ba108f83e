package entities

import "time"

// Article is a feed entry after parsing, before and after filtering.
// Relevance is zero until scored.
type Article struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time
	Category  string
	Source    string
	Relevance float64
}
