package headlines

import (
	"errors"
	"fmt"

	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/utils/databases"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Save(headline entities.SentHeadline) error {
	err := repo.db.GetDB().
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true}).
		Create(&headline).Error
	if err != nil {
		return fmt.Errorf("failed to save headline: %w", err)
	}
	return nil
}

func (repo *Impl) Exists(title string) (bool, error) {
	var headline entities.SentHeadline
	result := repo.db.GetDB().Where("title = ?", title).First(&headline)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check headline existence: %w", result.Error)
	}

	return true, nil
}

func (repo *Impl) RecentNormalizedTitles(limit int) ([]string, error) {
	var titles []string
	result := repo.db.GetDB().
		Model(&entities.SentHeadline{}).
		Order("sent_at desc").
		Limit(limit).
		Pluck("normalized_title", &titles)
	return titles, result.Error
}

// Trim drops the oldest entries so that at most max remain.
func (repo *Impl) Trim(max int) error {
	var keep []int64
	result := repo.db.GetDB().
		Model(&entities.SentHeadline{}).
		Order("sent_at desc").
		Limit(max).
		Pluck("id", &keep)
	if result.Error != nil {
		return result.Error
	}

	if len(keep) == 0 {
		return nil
	}

	return repo.db.GetDB().
		Where("id NOT IN ?", keep).
		Delete(&entities.SentHeadline{}).
		Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.SentHeadline{}).Count(count)

	return *count
}
