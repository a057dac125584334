package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/plzerfassung/plzerfassung/app/repository"
	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/remote"
	"github.com/plzerfassung/plzerfassung/internal/pkg/session"
	"github.com/plzerfassung/plzerfassung/internal/pkg/viewmodel"
)

// PasswordController handles the shared password dialog
type PasswordController struct {
	visitors repository.VisitorRepository
}

// NewPasswordController creates a new password controller
func NewPasswordController(visitors repository.VisitorRepository) *PasswordController {
	return &PasswordController{visitors: visitors}
}

// HandleShow renders the password dialog
func (pc *PasswordController) HandleShow(c *fiber.Ctx) error {
	access := accesscontext.GetAccessContext(c)
	if access.Unlocked() {
		return c.Redirect(constants.HomeRoute, fiber.StatusSeeOther)
	}
	page := viewmodel.PasswordPage{
		Layout:  newLayout(c, " | Passwort"),
		Invalid: access.PasswordInvalid,
	}
	return c.Render("password", page, mainLayout)
}

// HandleSave stores the password and verifies it against the backend
func (pc *PasswordController) HandleSave(c *fiber.Ctx) error {
	// sent exactly as typed, surrounding spaces included
	password := c.FormValue("password")
	if password == "" {
		return redirectWithError(c, "Bitte ein Passwort eingeben", constants.PasswordRoute)
	}

	sess, err := session.Get(c)
	if err != nil {
		log.Errorf("[Session] failed to load session: %v", err)
		return redirectWithError(c, "Passwort konnte nicht gespeichert werden", constants.PasswordRoute)
	}

	stored := password
	checkErr := pc.visitors.CheckPassword(c.UserContext(), password)
	if remote.IsForbidden(checkErr) {
		stored = accesscontext.PasswordInvalid
	} else if checkErr != nil {
		// the backend may be down; keep the password and let the next call decide
		log.Warnf("[Remote] password check failed: %v", checkErr)
	}

	sess.Set(accesscontext.KeyPassword, stored)
	if err := sess.Save(); err != nil {
		log.Errorf("[Session] failed to store password: %v", err)
		return redirectWithError(c, "Passwort konnte nicht gespeichert werden", constants.PasswordRoute)
	}

	if stored == accesscontext.PasswordInvalid {
		return c.Redirect(constants.PasswordRoute, fiber.StatusSeeOther)
	}
	return c.Redirect(constants.HomeRoute, fiber.StatusSeeOther)
}

// HandleLogout forgets the stored password
func (pc *PasswordController) HandleLogout(c *fiber.Ctx) error {
	if err := session.Destroy(c); err != nil {
		log.Warnf("[Session] failed to destroy session: %v", err)
	}
	return c.Redirect(constants.PasswordRoute, fiber.StatusSeeOther)
}
