package dates_test

import (
	"testing"
	"time"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/utils/dates"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

	if got := dates.FormatDateTime(ts, constants.LanguageEnglish); got != "March 07, 2025 at 14:30" {
		t.Errorf("unexpected english format: %q", got)
	}

	if got := dates.FormatDateTime(ts, constants.LanguageHindi); got != "07/03/2025 14:30" {
		t.Errorf("unexpected hindi format: %q", got)
	}

	if got := dates.FormatDateTime(time.Time{}, constants.LanguageEnglish); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}
}

func TestFormatRelative(t *testing.T) {
	ts := time.Now().Add(-2 * time.Minute)

	got := dates.FormatRelative(ts, constants.LanguageEnglish)
	if got == "" {
		t.Error("expected non-empty relative time")
	}

	// Hindi falls back to the absolute form.
	if got := dates.FormatRelative(ts, constants.LanguageHindi); got != dates.FormatDateTime(ts, constants.LanguageHindi) {
		t.Errorf("expected absolute hindi format, got %q", got)
	}
}

func TestStringToDate(t *testing.T) {
	parsed, err := dates.StringToDate("2025-03-07", dates.DateFormat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dates.DateToString(parsed, dates.DateFormat) != "2025-03-07" {
		t.Errorf("round trip mismatch: %v", parsed)
	}
}
