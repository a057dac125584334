package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
)

// RequirePassword ensures a usable password is stored; redirects to the password dialog if missing.
func RequirePassword(c *fiber.Ctx) error {
	if !accesscontext.GetAccessContext(c).Unlocked() {
		return c.Redirect(constants.PasswordRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}
