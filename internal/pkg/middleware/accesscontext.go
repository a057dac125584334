package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/session"
)

// AccessContextMiddleware reads the stored password once per request and
// exposes it through accesscontext.GetAccessContext.
func AccessContextMiddleware(c *fiber.Ctx) error {
	store := session.GetSessionStore()
	if store == nil {
		c.Locals(accesscontext.KeyAccessContext, accesscontext.AccessContext{})
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		// On error: treat as locked
		c.Locals(accesscontext.KeyAccessContext, accesscontext.AccessContext{})
		return c.Next()
	}

	stored, _ := sess.Get(accesscontext.KeyPassword).(string)
	c.Locals(accesscontext.KeyAccessContext, accesscontext.FromStored(stored))
	return c.Next()
}
