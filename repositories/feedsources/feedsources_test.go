package feedsources_test

import (
	"testing"
	"time"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/repositories/feedsources"
	"cryptogold-alerts/utils/databases"
)

func newTestRepo(t *testing.T) *feedsources.Impl {
	t.Helper()

	db := databases.NewWithDSN(":memory:")
	if err := db.Run(); err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(db.Shutdown)

	if err := db.GetDB().AutoMigrate(&entities.FeedSource{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return feedsources.New(db)
}

func TestCreateAndCount(t *testing.T) {
	repo := newTestRepo(t)

	if count := repo.Count(); count != 0 {
		t.Fatalf("expected empty registry, got %d", count)
	}

	err := repo.Create(entities.FeedSource{
		Name:       "cointelegraph",
		Category:   constants.CategoryCrypto,
		URL:        "https://cointelegraph.com/rss",
		LastUpdate: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := repo.Count(); count != 1 {
		t.Errorf("expected 1 source, got %d", count)
	}
}

func TestGetByCategory(t *testing.T) {
	repo := newTestRepo(t)

	sources := []entities.FeedSource{
		{Name: "coindesk", Category: constants.CategoryCrypto, URL: "https://www.coindesk.com/rss"},
		{Name: "kitco", Category: constants.CategoryGold, URL: "https://www.kitco.com/rss"},
		{Name: "mining", Category: constants.CategoryGold, URL: "https://www.mining.com/rss/"},
	}
	for _, source := range sources {
		if err := repo.Create(source); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	gold, err := repo.GetByCategory(constants.CategoryGold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gold) != 2 {
		t.Errorf("expected 2 gold sources, got %d", len(gold))
	}

	all, err := repo.GetFeedSources()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 sources, got %d", len(all))
	}
}

func TestSave_UpdatesWatermark(t *testing.T) {
	repo := newTestRepo(t)

	source := entities.FeedSource{
		Name:       "decrypt",
		Category:   constants.CategoryCrypto,
		URL:        "https://decrypt.co/feed",
		LastUpdate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(source); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source.LastUpdate = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.Save(source); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := repo.GetFeedSources()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 source, got %d", len(all))
	}
	if !all[0].LastUpdate.Equal(source.LastUpdate) {
		t.Errorf("expected watermark %v, got %v", source.LastUpdate, all[0].LastUpdate)
	}
}
