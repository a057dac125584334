package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plzerfassung/plzerfassung/app/models"
)

func entry(plz, land, kreis, km string, n int) models.Entry {
	return models.Entry{
		PLZ:        models.Text(plz),
		Bundesland: models.Text(land),
		Landkreis:  models.Text(kreis),
		Luftlinie:  models.Text(km),
		Anzahl:     n,
	}
}

func monthly(date string, e models.Entry) models.MonthlyEntry {
	return models.MonthlyEntry{Entry: e, Date: date}
}

func TestFormatDaySumsPerPLZ(t *testing.T) {
	data := FormatDay([]models.Entry{
		entry("04109", "Sachsen", "Leipzig", "1", 2),
		entry("10115", "Berlin", "Berlin", "149", 1),
		entry("04109", "Sachsen", "Leipzig", "1", 3),
		entry("Österreich", "-", "-", "-", 4),
	})

	require.Len(t, data, 3)
	assert.Equal(t, 5, data["04109"].TotalAmount)
	assert.Equal(t, 1, data["10115"].TotalAmount)
	assert.Equal(t, "-", data["Österreich"].Luftlinie)
}

func TestFormatDayEmpty(t *testing.T) {
	data := FormatDay(nil)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestFormatMonthGroupsByDate(t *testing.T) {
	result := FormatMonth([]models.MonthlyEntry{
		monthly("2024-05-02", entry("04109", "Sachsen", "Leipzig", "1", 2)),
		monthly("2024-05-01", entry("04109", "Sachsen", "Leipzig", "1", 1)),
		monthly("2024-05-02", entry("04109", "Sachsen", "Leipzig", "1", 5)),
		monthly("2024-05-02", entry("80331", "Bayern", "München", "361", 1)),
	})

	require.Len(t, result, 2)
	assert.Equal(t, 1, result["2024-05-01"]["04109"].TotalAmount)
	assert.Equal(t, 7, result["2024-05-02"]["04109"].TotalAmount)
	assert.Equal(t, 1, result["2024-05-02"]["80331"].TotalAmount)
}

func TestSortRowsOrdersByPLZ(t *testing.T) {
	rows := SortRows(models.PLZData{
		"80331":      {Bundesland: "Bayern", Landkreis: "München", Luftlinie: "361", TotalAmount: 1},
		"04109":      {Bundesland: "Sachsen", Landkreis: "Leipzig", Luftlinie: "1", TotalAmount: 2},
		"Österreich": {Bundesland: "-", Landkreis: "-", Luftlinie: "-", TotalAmount: 3},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, "04109", rows[0].PLZ)
	assert.Equal(t, "Leipzig (Sachsen)", rows[0].Location)
	assert.Equal(t, "80331", rows[1].PLZ)
	assert.Equal(t, "Österreich", rows[2].PLZ)
	assert.Equal(t, "- (-)", rows[2].Location)
}

func TestSplitRows(t *testing.T) {
	near, far := SplitRows([]Row{
		{PLZ: "a", Distance: "50"},
		{PLZ: "b", Distance: "51"},
		{PLZ: "c", Distance: "-"},
		{PLZ: "d", Distance: "3"},
	})

	assert.Equal(t, []Row{{PLZ: "a", Distance: "50"}, {PLZ: "d", Distance: "3"}}, near)
	assert.Equal(t, []Row{{PLZ: "b", Distance: "51"}, {PLZ: "c", Distance: "-"}}, far)
}

func TestTotalsOf(t *testing.T) {
	totals := TotalsOf(models.PLZData{
		"04109":      {Luftlinie: "1", TotalAmount: 5},
		"06108":      {Luftlinie: "50", TotalAmount: 2},
		"10115":      {Luftlinie: "149", TotalAmount: 1},
		"Österreich": {Luftlinie: "-", TotalAmount: 4},
	})

	assert.Equal(t, Totals{Total: 12, Near: 7, Far: 5}, totals)
}

func TestDailyRowsAndMonthTotals(t *testing.T) {
	result := models.MonthlyResult{
		"2024-05-10": {"04109": {Luftlinie: "1", TotalAmount: 2}},
		"2024-05-02": {
			"04109": {Luftlinie: "1", TotalAmount: 1},
			"10115": {Luftlinie: "149", TotalAmount: 3},
		},
	}

	rows := DailyRows(result)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-02", rows[0].Date)
	assert.Equal(t, Totals{Total: 4, Near: 1, Far: 3}, rows[0].Totals)
	assert.Equal(t, "2024-05-10", rows[1].Date)

	assert.Equal(t, Totals{Total: 6, Near: 3, Far: 3}, MonthTotals(rows))
}

func TestSummaryRowsMergesDays(t *testing.T) {
	result := models.MonthlyResult{
		"2024-05-03": {
			"04109": {Bundesland: "Sachsen", Landkreis: "Leipzig (neu)", Luftlinie: "1", TotalAmount: 4},
			"80331": {Bundesland: "Bayern", Landkreis: "München", Luftlinie: "361", TotalAmount: 1},
		},
		"2024-05-01": {
			"04109": {Bundesland: "Sachsen", Landkreis: "Leipzig", Luftlinie: "1", TotalAmount: 2},
		},
	}

	rows := SummaryRows(result)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{PLZ: "04109", Location: "Leipzig (Sachsen)", Distance: "1", Visitors: 6}, rows[0])
	assert.Equal(t, Row{PLZ: "80331", Location: "München (Bayern)", Distance: "361", Visitors: 1}, rows[1])
}

func TestSortedDates(t *testing.T) {
	result := models.MonthlyResult{
		"kaputt":                   {},
		"2024-05-10T00:00:00.000Z": {},
		"2024-05-02T00:00:00.000Z": {},
	}
	assert.Equal(t, []string{"2024-05-02T00:00:00.000Z", "2024-05-10T00:00:00.000Z", "kaputt"}, SortedDates(result))
}

func TestDayLabel(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)

	assert.Equal(t, "03.05.", DayLabel("2024-05-02T22:00:00.000Z", berlin))
	assert.Equal(t, "02.05.", DayLabel("2024-05-02", berlin))
	assert.Equal(t, "02.05.", DayLabel("02.05.2024", berlin))
	assert.Equal(t, "gestern", DayLabel("gestern", berlin))
}

func TestSortRowsUsesGermanCollation(t *testing.T) {
	foreign := models.PLZTotal{Bundesland: "-", Landkreis: "-", Luftlinie: "-", TotalAmount: 1}
	data := models.PLZData{
		"Schweiz":     foreign,
		"Österreich":  foreign,
		"Dänemark":    foreign,
		"Deutschland": foreign,
		"Belgien":     foreign,
		"04109":       {Bundesland: "Sachsen", Landkreis: "Leipzig", Luftlinie: "1", TotalAmount: 2},
	}
	want := []string{"04109", "Belgien", "Dänemark", "Deutschland", "Österreich", "Schweiz"}

	plzOf := func(rows []Row) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.PLZ)
		}
		return out
	}

	assert.Equal(t, want, plzOf(SortRows(data)))
	assert.Equal(t, want, plzOf(SummaryRows(models.MonthlyResult{"2024-05-01": data})))
}
