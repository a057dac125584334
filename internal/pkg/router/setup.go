package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/plzerfassung/plzerfassung/app/controllers"
	"github.com/plzerfassung/plzerfassung/app/repository"
	"github.com/plzerfassung/plzerfassung/internal/pkg/metrics/counter"
	"github.com/plzerfassung/plzerfassung/internal/pkg/plz"
)

// Router registers a group of routes on the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the services the controllers are built from.
type Dependencies struct {
	Repositories *repository.Factory
	Directory    *plz.Directory
	Archiver     controllers.Archiver // nil disables the report archive
	Counters     *counter.Counter     // nil disables usage statistics
	Location     *time.Location
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// Ops routes first so health checks and metrics bypass the session
	// and the password gate.
	setup(app, NewOpsRouter(deps.Counters, deps.Location), NewHttpRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
