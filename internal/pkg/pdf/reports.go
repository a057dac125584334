package pdf

import (
	"strconv"
	"time"

	"github.com/goodsign/monday"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/internal/pkg/report"
)

const (
	captionNear = "Besucher <= 50km"
	captionFar  = "Besucher > 50km"
	filePrefix  = "PLZ Erfassung - "
)

var (
	plzHead = []string{
		"PLZ",
		"Landkreis / Stadt (Bundesland)",
		"Distanz (Luftlinie in km)",
		"Besucherzahl",
	}
	plzWidths = []float64{24, 78, 48, 30}

	visitorHead = []string{
		"Tag",
		"Besucherzahl",
		"Besucherzahl <=50km",
		"Besucherzahl >50km",
	}
	visitorWidths = []float64{45, 45, 45, 45}
)

// DailyFileName is "PLZ Erfassung - DD MM YYYY.pdf".
func DailyFileName(day time.Time) string {
	return filePrefix + day.Format("02 01 2006") + ".pdf"
}

// MonthlyFileName names the detailed monthly export.
func MonthlyFileName(month time.Time) string {
	return filePrefix + monthTitle(month) + " Übersicht.pdf"
}

// MonthlySummaryFileName names the per-postal-code monthly export.
func MonthlySummaryFileName(month time.Time) string {
	return filePrefix + monthTitle(month) + ".pdf"
}

func dayTitle(day time.Time) string {
	return monday.Format(day, "Monday 02.01.2006", monday.LocaleDeDE)
}

func monthTitle(month time.Time) string {
	return monday.Format(month, "January 2006", monday.LocaleDeDE)
}

// Daily renders the report of a single day.
func Daily(data models.PLZData, day time.Time) (*Report, error) {
	d := newDocument()
	d.title(dayTitle(day), 20)

	totals := report.TotalsOf(data)
	d.text([]string{
		"Gesamtanzahl Besucher: " + strconv.Itoa(totals.Total),
		"Gesamtanzahl Besucher <= 50km: " + strconv.Itoa(totals.Near),
		"Gesamtanzahl Besucher >50km: " + strconv.Itoa(totals.Far),
	}, 30)

	near, far := report.SplitRows(report.SortRows(data))
	d.plzTables(60, near, far)

	return d.render(DailyFileName(day))
}

// Monthly renders the month overview followed by every day's tables.
func Monthly(result models.MonthlyResult, month time.Time) (*Report, error) {
	d := newDocument()
	d.monthlyPreface(result, month)

	loc := month.Location()
	for _, date := range report.SortedDates(result) {
		// keep the day heading on the page of its first table
		y := d.ensureSpace(d.finalY+12, 8+3+3*rowHeight)
		d.pdf.Text(marginLeft, y, d.tr(report.DayLabel(date, loc)))

		near, far := report.SplitRows(report.SortRows(result[date]))
		d.plzTables(y+8, near, far)
		d.rule(d.finalY + 5)
	}

	return d.render(MonthlyFileName(month))
}

// MonthlySummary renders the month overview and one table pair with all
// postal codes of the month.
func MonthlySummary(result models.MonthlyResult, month time.Time) (*Report, error) {
	d := newDocument()
	d.monthlyPreface(result, month)

	near, far := report.SplitRows(report.SummaryRows(result))
	d.plzTables(d.finalY+10, near, far)

	return d.render(MonthlySummaryFileName(month))
}

func (d *document) monthlyPreface(result models.MonthlyResult, month time.Time) {
	d.title(monthTitle(month), 20)

	days := report.DailyRows(result)
	totals := report.MonthTotals(days)
	d.text([]string{
		"Gesamtanzahl Besucher: " + strconv.Itoa(totals.Total),
		"Gesamtanzahl Besucher <= 50km: " + strconv.Itoa(totals.Near),
		"Gesamtanzahl Besucher > 50km: " + strconv.Itoa(totals.Far),
	}, 30)

	body := make([][]string, 0, len(days))
	for _, r := range days {
		body = append(body, []string{
			report.DayLabel(r.Date, month.Location()),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Near),
			strconv.Itoa(r.Far),
		})
	}
	d.table(50, "", visitorHead, visitorWidths, body)
}

func (d *document) plzTables(top float64, near, far []report.Row) {
	d.table(top, captionNear, plzHead, plzWidths, plzBody(near))
	d.table(d.finalY+10, captionFar, plzHead, plzWidths, plzBody(far))
}

func plzBody(rows []report.Row) [][]string {
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{r.PLZ, r.Location, r.Distance, strconv.Itoa(r.Visitors)})
	}
	return body
}
