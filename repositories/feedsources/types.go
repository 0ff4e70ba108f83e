package feedsources

import (
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/utils/databases"
)

type Repository interface {
	GetFeedSources() ([]entities.FeedSource, error)
	GetByCategory(category string) ([]entities.FeedSource, error)
	Create(feedSource entities.FeedSource) error
	Save(feedSource entities.FeedSource) error
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
