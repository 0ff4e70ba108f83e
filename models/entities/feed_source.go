package entities

import "time"

type FeedSource struct {
	Name       string `gorm:"primaryKey"`
	Category   string `gorm:"index"`
	URL        string
	LastUpdate time.Time `gorm:"not null; default:current_timestamp"`
}
