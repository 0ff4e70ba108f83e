package entities

import "time"

// SentHeadline is one entry of the dedup set. NormalizedTitle backs the
// similarity check, SentAt drives the oldest-first trim.
type SentHeadline struct {
	ID              int64  `gorm:"primaryKey"`
	Title           string `gorm:"uniqueIndex"`
	NormalizedTitle string
	SentAt          time.Time `gorm:"index; not null; default:current_timestamp"`
}
