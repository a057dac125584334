package accesscontext

import "github.com/gofiber/fiber/v2"

// AccessContext describes the password state of the current session.
type AccessContext struct {
	Password        string
	PasswordInvalid bool
}

// Unlocked reports whether a usable password is stored.
func (a AccessContext) Unlocked() bool {
	return a.Password != "" && !a.PasswordInvalid
}

// FromStored interprets the raw session value.
func FromStored(stored string) AccessContext {
	if stored == PasswordInvalid {
		return AccessContext{PasswordInvalid: true}
	}
	return AccessContext{Password: stored}
}

// GetAccessContext retrieves the access context from fiber context
// Returns a locked context if none is set
func GetAccessContext(c *fiber.Ctx) AccessContext {
	if ctx, ok := c.Locals(KeyAccessContext).(AccessContext); ok {
		return ctx
	}
	return AccessContext{}
}

// GetPassword returns the stored password, or empty string if there is none
func GetPassword(c *fiber.Ctx) string {
	return GetAccessContext(c).Password
}
