package report

import (
	"sort"
	"time"

	"github.com/plzerfassung/plzerfassung/app/models"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02",
	"02.01.2006",
}

// ParseDate understands the date formats the backend has been seen to return.
// Timestamps are converted to loc, plain dates are taken as midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// DayLabel renders a date as "DD.MM.", or returns raw when it cannot be parsed.
func DayLabel(raw string, loc *time.Location) string {
	t, ok := ParseDate(raw, loc)
	if !ok {
		return raw
	}
	return t.Format("02.01.")
}

// SortedDates orders the dates of result chronologically. Unparseable
// dates sort after parseable ones, by string.
func SortedDates(result models.MonthlyResult) []string {
	dates := make([]string, 0, len(result))
	for d := range result {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		ti, okI := ParseDate(dates[i], time.UTC)
		tj, okJ := ParseDate(dates[j], time.UTC)
		switch {
		case okI && okJ && !ti.Equal(tj):
			return ti.Before(tj)
		case okI != okJ:
			return okI
		default:
			return dates[i] < dates[j]
		}
	})
	return dates
}
