package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/app/repository"
	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/metrics/counter"
	"github.com/plzerfassung/plzerfassung/internal/pkg/plz"
	"github.com/plzerfassung/plzerfassung/internal/pkg/viewmodel"
)

// EntryController handles the visitor form
type EntryController struct {
	usage
	visitors  repository.VisitorRepository
	directory *plz.Directory
	countries []string
	loc       *time.Location
	now       func() time.Time
}

// NewEntryController creates a new entry controller
func NewEntryController(visitors repository.VisitorRepository, directory *plz.Directory, countries []string, loc *time.Location) *EntryController {
	return &EntryController{
		visitors:  visitors,
		directory: directory,
		countries: countries,
		loc:       loc,
		now:       time.Now,
	}
}

// HandleIndex renders the form and the export panel
func (ec *EntryController) HandleIndex(c *fiber.Ctx) error {
	page := viewmodel.NewIndexPage(newLayout(c, ""), ec.countries, loadRecentEntries(c), ec.now().In(ec.loc))
	return c.Render("index", page, mainLayout)
}

// HandleSubmit validates the form and records the entry
func (ec *EntryController) HandleSubmit(c *fiber.Ctx) error {
	var form models.EntryForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "Ungültige Eingabe", constants.HomeRoute)
	}

	count, err := form.Validate(ec.countries)
	if err != nil {
		return redirectWithError(c, err.Error(), constants.HomeRoute)
	}

	entry, err := ec.buildEntry(&form, count)
	if err != nil {
		return redirectWithError(c, err.Error(), constants.HomeRoute)
	}

	now := ec.now().In(ec.loc)
	if err := ec.visitors.Add(c.UserContext(), accesscontext.GetPassword(c), entry); err != nil {
		ec.record(c.UserContext(), now, counter.FieldRemoteErrors, 1)
		return handleRemoteError(c, "Fehler beim Senden", err)
	}
	ec.record(c.UserContext(), now, counter.FieldEntries, 1)
	ec.record(c.UserContext(), now, counter.FieldVisitors, int64(count))

	saveRecentEntries(c, models.PrependRecent(loadRecentEntries(c), models.RecentEntry{
		Title:  form.Title(),
		Count:  count,
		SentAt: now,
	}))

	return redirectWithSuccess(c, form.Title()+" hinzugefügt", constants.HomeRoute)
}

func (ec *EntryController) buildEntry(form *models.EntryForm, count int) (models.Entry, error) {
	if !form.IsDomestic() {
		return models.NewEntry(form.Country, models.ForeignLocation(), count), nil
	}
	loc, ok := ec.directory.Lookup(form.PLZ)
	if !ok {
		return models.Entry{}, errors.New("PLZ nicht gefunden: " + form.PLZ)
	}
	return models.NewEntry(form.PLZ, loc, count), nil
}
