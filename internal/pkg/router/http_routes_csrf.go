package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/env"
	"github.com/plzerfassung/plzerfassung/internal/pkg/middleware"
)

func newCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	})
}

// postLimiter throttles form submissions per client; page views are not counted.
func postLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        env.GetInt("POST_RATE_LIMIT", 60),
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodPost
		},
	})
}

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	group := app.Group("", newCSRF(), postLimiter())

	group.Get(constants.PasswordRoute, h.passwords.HandleShow)
	group.Post(constants.PasswordRoute, h.passwords.HandleSave)
	group.Post(constants.LogoutRoute, h.passwords.HandleLogout)

	group.Get(constants.HomeRoute, middleware.RequirePassword, h.entries.HandleIndex)
	group.Post(constants.EntriesRoute, middleware.RequirePassword, h.entries.HandleSubmit)

	group.Post(constants.ExportDayRoute, middleware.RequirePassword, h.exports.HandleDay)
	group.Post(constants.ExportMonthRoute, middleware.RequirePassword, h.exports.HandleMonth)
	group.Post(constants.ExportMonthDetailedRoute, middleware.RequirePassword, h.exports.HandleMonthDetailed)
}
