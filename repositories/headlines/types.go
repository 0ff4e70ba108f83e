package headlines

import (
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/utils/databases"
)

type Repository interface {
	Save(headline entities.SentHeadline) error
	Exists(title string) (bool, error)
	RecentNormalizedTitles(limit int) ([]string, error)
	Trim(max int) error
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
