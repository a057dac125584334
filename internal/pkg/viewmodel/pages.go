package viewmodel

import (
	"time"

	"github.com/goodsign/monday"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
)

// MonthOption is one entry of the export month picker.
type MonthOption struct {
	Value int
	Name  string
}

// IndexPage backs the entry form and the export panel.
type IndexPage struct {
	Layout
	Countries      []string
	DefaultCountry string
	DefaultCount   int
	Recent         []models.RecentEntry
	Today          string
	Months         []MonthOption
	Years          []int
	SelectedMonth  int
	SelectedYear   int
}

// PasswordPage backs the password dialog.
type PasswordPage struct {
	Layout
	Invalid bool
}

// NewIndexPage fills the pickers relative to now.
func NewIndexPage(layout Layout, countries []string, recent []models.RecentEntry, now time.Time) IndexPage {
	return IndexPage{
		Layout:         layout,
		Countries:      countries,
		DefaultCountry: models.DefaultCountry,
		DefaultCount:   models.DefaultCount,
		Recent:         recent,
		Today:          now.Format("2006-01-02"),
		Months:         GermanMonths(),
		Years:          ExportYears(now),
		SelectedMonth:  int(now.Month()),
		SelectedYear:   now.Year(),
	}
}

// GermanMonths lists Januar..Dezember with values 1..12.
func GermanMonths() []MonthOption {
	out := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthOption{
			Value: int(m),
			Name:  monday.Format(time.Date(2000, m, 1, 0, 0, 0, 0, time.UTC), "January", monday.LocaleDeDE),
		})
	}
	return out
}

// ExportYears returns constants.StartYear up to the year of now.
func ExportYears(now time.Time) []int {
	years := []int{}
	for y := constants.StartYear; y <= now.Year(); y++ {
		years = append(years, y)
	}
	return years
}
