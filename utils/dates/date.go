package dates

import (
	"cryptogold-alerts/models/constants"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	DateFormat            = "2006-01-02"
	englishDateTimeFormat = "January 02, 2006 at 15:04"
	hindiDateTimeFormat   = "02/01/2006 15:04"
	timestampFormat       = "2006-01-02 15:04:05"
)

// FormatDateTime renders a timestamp in the conventions of the given
// language.
func FormatDateTime(from time.Time, language string) string {
	if from.IsZero() {
		return ""
	}

	if language == constants.LanguageHindi {
		return from.Format(hindiDateTimeFormat)
	}
	return from.Format(englishDateTimeFormat)
}

// FormatRelative renders a timestamp as a relative duration ("2 minutes
// ago"). English only; other languages fall back to the absolute form.
func FormatRelative(from time.Time, language string) string {
	if from.IsZero() {
		return ""
	}

	if language == constants.LanguageEnglish {
		return humanize.Time(from)
	}
	return FormatDateTime(from, language)
}

func DateToString(from time.Time, dateFormat string) string {
	return from.Format(dateFormat)
}

func StringToDate(from string, dateFormat string) (time.Time, error) {
	return time.Parse(dateFormat, from)
}

// Timestamp renders the long machine-friendly form used in status reports.
func Timestamp(from time.Time) string {
	return from.Format(timestampFormat)
}
