// Package report turns raw entries from the backend into the grouped
// totals printed on the exports.
package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/plzerfassung/plzerfassung/app/models"
)

// FormatDay sums visitor counts per postal code. Location fields come from
// the last entry seen for a code.
func FormatDay(entries []models.Entry) models.PLZData {
	data := make(models.PLZData)
	for _, e := range entries {
		addEntry(data, e)
	}
	return data
}

// FormatMonth groups entries by their date string and sums them per postal code.
func FormatMonth(entries []models.MonthlyEntry) models.MonthlyResult {
	result := make(models.MonthlyResult)
	for _, e := range entries {
		day, ok := result[e.Date]
		if !ok {
			day = make(models.PLZData)
			result[e.Date] = day
		}
		addEntry(day, e.Entry)
	}
	return result
}

func addEntry(data models.PLZData, e models.Entry) {
	code := e.PLZ.String()
	data[code] = models.PLZTotal{
		Bundesland:  e.Bundesland.String(),
		Landkreis:   e.Landkreis.String(),
		Luftlinie:   e.Luftlinie.String(),
		TotalAmount: data[code].TotalAmount + e.Anzahl,
	}
}

// Row is one line of a postal code table.
type Row struct {
	PLZ      string
	Location string
	Distance string
	Visitors int
}

// Near reports whether the row falls into the "<= 50km" table.
func (r Row) Near() bool {
	return IsNear(r.Distance)
}

func newRow(code string, t models.PLZTotal) Row {
	return Row{
		PLZ:      code,
		Location: t.Landkreis + " (" + t.Bundesland + ")",
		Distance: t.Luftlinie,
		Visitors: t.TotalAmount,
	}
}

// SortRows flattens data into rows ordered by postal code.
func SortRows(data models.PLZData) []Row {
	rows := make([]Row, 0, len(data))
	for code, t := range data {
		rows = append(rows, newRow(code, t))
	}
	sortByPLZ(rows)
	return rows
}

// sortByPLZ orders postal codes and country names the German way,
// so "Österreich" sorts next to "Ost" and not after "Z".
func sortByPLZ(rows []Row) {
	col := collate.New(language.German)
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].PLZ, rows[j].PLZ) < 0
	})
}

// SplitRows partitions rows into near and far, keeping their order.
func SplitRows(rows []Row) (near, far []Row) {
	near = []Row{}
	far = []Row{}
	for _, r := range rows {
		if r.Near() {
			near = append(near, r)
		} else {
			far = append(far, r)
		}
	}
	return near, far
}

// Totals are visitor sums split by distance. Total is always Near+Far.
type Totals struct {
	Total int
	Near  int
	Far   int
}

func (t *Totals) add(distance string, visitors int) {
	t.Total += visitors
	if IsNear(distance) {
		t.Near += visitors
	} else {
		t.Far += visitors
	}
}

// TotalsOf sums all postal codes of one day.
func TotalsOf(data models.PLZData) Totals {
	var t Totals
	for _, v := range data {
		t.add(v.Luftlinie, v.TotalAmount)
	}
	return t
}

// DayRow is one line of the monthly visitor table.
type DayRow struct {
	Date string
	Totals
}

// DailyRows returns one row per date in chronological order.
func DailyRows(result models.MonthlyResult) []DayRow {
	dates := SortedDates(result)
	rows := make([]DayRow, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, DayRow{Date: d, Totals: TotalsOf(result[d])})
	}
	return rows
}

// MonthTotals sums the daily rows.
func MonthTotals(rows []DayRow) Totals {
	var t Totals
	for _, r := range rows {
		t.Total += r.Total
		t.Near += r.Near
		t.Far += r.Far
	}
	return t
}

// SummaryRows merges all days into one row per postal code. The location
// is taken from the earliest day the code appears on.
func SummaryRows(result models.MonthlyResult) []Row {
	merged := make(map[string]Row)
	for _, d := range SortedDates(result) {
		for code, t := range result[d] {
			row, ok := merged[code]
			if !ok {
				merged[code] = newRow(code, t)
				continue
			}
			row.Visitors += t.TotalAmount
			merged[code] = row
		}
	}

	rows := make([]Row, 0, len(merged))
	for _, r := range merged {
		rows = append(rows, r)
	}
	sortByPLZ(rows)
	return rows
}
