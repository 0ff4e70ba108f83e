package headlines_test

import (
	"testing"
	"time"

	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/repositories/headlines"
	"cryptogold-alerts/utils/databases"
)

func newTestRepo(t *testing.T) *headlines.Impl {
	t.Helper()

	db := databases.NewWithDSN(":memory:")
	if err := db.Run(); err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(db.Shutdown)

	if err := db.GetDB().AutoMigrate(&entities.SentHeadline{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return headlines.New(db)
}

func TestSaveAndExists(t *testing.T) {
	repo := newTestRepo(t)

	headline := entities.SentHeadline{
		Title:           "Bitcoin hits record high",
		NormalizedTitle: "bitcoin hits record high",
		SentAt:          time.Now().UTC(),
	}
	if err := repo.Save(headline); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := repo.Exists("Bitcoin hits record high")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected headline to exist")
	}

	exists, err = repo.Exists("Gold falls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected headline to be absent")
	}
}

func TestSave_DuplicateTitleIsIgnored(t *testing.T) {
	repo := newTestRepo(t)

	headline := entities.SentHeadline{Title: "Same title", NormalizedTitle: "same title", SentAt: time.Now().UTC()}
	if err := repo.Save(headline); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(headline); err != nil {
		t.Fatalf("expected duplicate save to be ignored, got: %v", err)
	}

	if count := repo.Count(); count != 1 {
		t.Errorf("expected 1 headline, got %d", count)
	}
}

func TestRecentNormalizedTitles(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		err := repo.Save(entities.SentHeadline{
			Title:           title,
			NormalizedTitle: title,
			SentAt:          base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	titles, err := repo.RecentNormalizedTitles(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "third" || titles[1] != "second" {
		t.Errorf("expected newest-first [third second], got %v", titles)
	}
}

func TestTrim(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, title := range []string{"a", "b", "c", "d", "e"} {
		err := repo.Save(entities.SentHeadline{
			Title:           title,
			NormalizedTitle: title,
			SentAt:          base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := repo.Trim(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := repo.Count(); count != 3 {
		t.Errorf("expected 3 headlines after trim, got %d", count)
	}

	// The oldest entries are the ones dropped.
	exists, err := repo.Exists("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected oldest headline to be trimmed")
	}

	exists, err = repo.Exists("e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected newest headline to survive the trim")
	}
}
