package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/plzerfassung/plzerfassung/app/models"
	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/flash"
	"github.com/plzerfassung/plzerfassung/internal/pkg/remote"
	"github.com/plzerfassung/plzerfassung/internal/pkg/session"
	"github.com/plzerfassung/plzerfassung/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// csrfToken is empty on routes without the csrf middleware.
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

func newLayout(c *fiber.Ctx, page string) viewmodel.Layout {
	return viewmodel.Layout{
		Page: page,
		Msg:  flash.Get(c),
		CSRF: csrfToken(c),
	}
}

func redirectWithError(c *fiber.Ctx, message, to string) error {
	return flash.Error(c, message, to)
}

func redirectWithSuccess(c *fiber.Ctx, message, to string) error {
	return flash.Success(c, message, to)
}

// handleRemoteError maps a backend failure to a response. A rejected
// password marks the stored one invalid and sends the user back to the
// password dialog.
func handleRemoteError(c *fiber.Ctx, prefix string, err error) error {
	if remote.IsForbidden(err) {
		if serr := session.SetSessionValue(c, accesscontext.KeyPassword, accesscontext.PasswordInvalid); serr != nil {
			log.Errorf("[Session] failed to invalidate password: %v", serr)
		}
		return c.Redirect(constants.PasswordRoute, fiber.StatusSeeOther)
	}
	log.Errorf("[Remote] %s: %v", prefix, err)
	return redirectWithError(c, prefix+": "+err.Error(), constants.HomeRoute)
}

func loadRecentEntries(c *fiber.Ctx) []models.RecentEntry {
	raw := session.GetSessionValue(c, accesscontext.KeyRecentEntries)
	if raw == "" {
		return nil
	}
	var list []models.RecentEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}

func saveRecentEntries(c *fiber.Ctx, list []models.RecentEntry) {
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := session.SetSessionValue(c, accesscontext.KeyRecentEntries, string(raw)); err != nil {
		log.Warnf("[Session] failed to store recent entries: %v", err)
	}
}

var errInvalidYear = errors.New("Ungültiges Jahr")
