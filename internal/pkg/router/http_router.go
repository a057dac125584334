package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plzerfassung/plzerfassung/app/controllers"
	"github.com/plzerfassung/plzerfassung/internal/pkg/middleware"
	"github.com/plzerfassung/plzerfassung/internal/pkg/plz"
	"github.com/plzerfassung/plzerfassung/internal/pkg/session"
)

type HttpRouter struct {
	entries   *controllers.EntryController
	passwords *controllers.PasswordController
	exports   *controllers.ExportController
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply AccessContext middleware globally as first middleware
	app.Use(middleware.AccessContextMiddleware)

	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(deps Dependencies) *HttpRouter {
	visitors := deps.Repositories.GetVisitorRepository()

	entries := controllers.NewEntryController(visitors, deps.Directory, plz.Countries(), deps.Location)
	exports := controllers.NewExportController(visitors, deps.Archiver, deps.Location)
	if deps.Counters != nil {
		entries.SetCounter(deps.Counters)
		exports.SetCounter(deps.Counters)
	}

	return &HttpRouter{
		entries:   entries,
		passwords: controllers.NewPasswordController(visitors),
		exports:   exports,
	}
}
