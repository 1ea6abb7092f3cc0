package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the human-facing date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// CompactDateLayout matches the upstream feed's date keys (YYYYMMDD).
	CompactDateLayout = "20060102"
)

const referenceTimezone = "America/Los_Angeles"

// ReferenceLocation returns the westernmost timezone of the feed's coverage
// area. The schedule keys games by local start date; anchoring "today" to the
// Pacific clock keeps the date from rolling over while eastern games are
// still in progress.
func ReferenceLocation() *time.Location {
	loc, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today returns the current date as YYYYMMDD in the reference timezone.
func Today(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().In(ReferenceLocation()).Format(CompactDateLayout)
}

// ReferenceDay returns the day-of-month in the reference timezone, shifted by
// delta days. Schedule day filters (TODAY/TOMORROW/YESTERDAY) compare against
// it rather than the caller's local clock.
func ReferenceDay(now func() time.Time, delta int) int {
	if now == nil {
		now = time.Now
	}
	return now().In(ReferenceLocation()).AddDate(0, 0, delta).Day()
}

// ResolveDateWord maps a fuzzy day word (yesterday, today, tonight, tomorrow,
// lastweek, nextweek) to a YYYYMMDD date in the reference timezone.
func ResolveDateWord(word string, now func() time.Time) (string, bool) {
	var delta int
	switch word {
	case "lastweek":
		delta = -7
	case "yesterday":
		delta = -1
	case "today", "tonight":
		delta = 0
	case "tomorrow":
		delta = 1
	case "nextweek":
		delta = 7
	default:
		return "", false
	}
	if now == nil {
		now = time.Now
	}
	return now().In(ReferenceLocation()).AddDate(0, 0, delta).Format(CompactDateLayout), true
}

// minArchiveDate is the earliest date the upstream archive serves.
var minArchiveDate = time.Date(2014, 10, 4, 0, 0, 0, 0, time.UTC)

// CheckDateInput validates a YYYY-MM-DD date string and returns it in the
// compact YYYYMMDD form.
func CheckDateInput(raw string) (string, error) {
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("incorrect date format, should be YYYY-MM-DD: %w", err)
	}
	if parsed.Before(minArchiveDate) {
		return "", fmt.Errorf("date %s predates the upstream archive (min %s)", raw, minArchiveDate.Format(DateLayout))
	}
	return parsed.Format(CompactDateLayout), nil
}
