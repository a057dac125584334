package controllers

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/app/repository"
	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/archive"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/metrics/counter"
	"github.com/plzerfassung/plzerfassung/internal/pkg/pdf"
	"github.com/plzerfassung/plzerfassung/internal/pkg/report"
)

const (
	exportErrorPrefix = "Fehler beim Export"
	archiveTimeout    = 30 * time.Second
)

// Archiver keeps a copy of generated reports.
type Archiver interface {
	Store(ctx context.Context, fileName string, content []byte) (*archive.UploadResult, error)
}

// ExportController renders the PDF downloads
type ExportController struct {
	usage
	visitors repository.VisitorRepository
	archiver Archiver
	loc      *time.Location
	now      func() time.Time
}

// NewExportController creates a new export controller. archiver may be nil.
func NewExportController(visitors repository.VisitorRepository, archiver Archiver, loc *time.Location) *ExportController {
	return &ExportController{
		visitors: visitors,
		archiver: archiver,
		loc:      loc,
		now:      time.Now,
	}
}

// HandleDay exports all entries of one day
func (ec *ExportController) HandleDay(c *fiber.Ctx) error {
	form, err := ec.parseForm(c)
	if err != nil {
		return redirectWithError(c, "Ungültige Eingabe", constants.HomeRoute)
	}

	day := ec.today()
	if form.Date != "" {
		day, err = time.ParseInLocation("2006-01-02", form.Date, ec.loc)
		if err != nil {
			return redirectWithError(c, "Ungültiges Datum", constants.HomeRoute)
		}
	}

	entries, err := ec.visitors.GetDay(c.UserContext(), accesscontext.GetPassword(c), day)
	if err != nil {
		ec.record(c.UserContext(), ec.now().In(ec.loc), counter.FieldRemoteErrors, 1)
		return handleRemoteError(c, exportErrorPrefix, err)
	}

	doc, err := pdf.Daily(report.FormatDay(entries), day)
	if err != nil {
		log.Errorf("[Export] failed to render daily report: %v", err)
		return redirectWithError(c, exportErrorPrefix+": "+err.Error(), constants.HomeRoute)
	}
	return ec.send(c, doc)
}

// HandleMonth exports the per-PLZ summary of a month
func (ec *ExportController) HandleMonth(c *fiber.Ctx) error {
	return ec.handleMonth(c, pdf.MonthlySummary)
}

// HandleMonthDetailed exports a month with one section per day
func (ec *ExportController) HandleMonthDetailed(c *fiber.Ctx) error {
	return ec.handleMonth(c, pdf.Monthly)
}

func (ec *ExportController) handleMonth(c *fiber.Ctx, render func(models.MonthlyResult, time.Time) (*pdf.Report, error)) error {
	form, err := ec.parseForm(c)
	if err != nil {
		return redirectWithError(c, "Ungültige Eingabe", constants.HomeRoute)
	}

	month, err := ec.selectedMonth(form)
	if err != nil {
		return redirectWithError(c, err.Error(), constants.HomeRoute)
	}

	entries, err := ec.visitors.GetMonth(c.UserContext(), accesscontext.GetPassword(c), month)
	if err != nil {
		ec.record(c.UserContext(), ec.now().In(ec.loc), counter.FieldRemoteErrors, 1)
		return handleRemoteError(c, exportErrorPrefix, err)
	}

	doc, err := render(report.FormatMonth(entries), month)
	if err != nil {
		log.Errorf("[Export] failed to render monthly report: %v", err)
		return redirectWithError(c, exportErrorPrefix+": "+err.Error(), constants.HomeRoute)
	}
	return ec.send(c, doc)
}

func (ec *ExportController) parseForm(c *fiber.Ctx) (*models.ExportForm, error) {
	form := new(models.ExportForm)
	if err := c.BodyParser(form); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return form, nil
}

func (ec *ExportController) today() time.Time {
	now := ec.now().In(ec.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ec.loc)
}

// selectedMonth falls back to the current month and year for missing fields.
func (ec *ExportController) selectedMonth(form *models.ExportForm) (time.Time, error) {
	now := ec.now().In(ec.loc)
	year, month := now.Year(), now.Month()
	if form.Year != 0 {
		year = form.Year
	}
	if form.Month != 0 {
		month = time.Month(form.Month)
	}
	if year < constants.StartYear || year > now.Year() {
		return time.Time{}, errInvalidYear
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, ec.loc), nil
}

func (ec *ExportController) send(c *fiber.Ctx, doc *pdf.Report) error {
	ec.archive(c.UserContext(), doc)
	ec.record(c.UserContext(), ec.now().In(ec.loc), counter.FieldExports, 1)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(doc.FileName))
	return c.Send(doc.Content)
}

// archive failures never fail the download
func (ec *ExportController) archive(ctx context.Context, doc *pdf.Report) {
	if ec.archiver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	if _, err := ec.archiver.Store(ctx, doc.FileName, doc.Content); err != nil {
		log.Warnf("[Archive] failed to archive %s: %v", doc.FileName, err)
	}
}

// contentDisposition carries an ASCII fallback next to the UTF-8 file name.
func contentDisposition(fileName string) string {
	fallback := strings.Map(func(r rune) rune {
		if r > 127 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, fileName)
	return `attachment; filename="` + fallback + `"; filename*=UTF-8''` + url.PathEscape(fileName)
}
