package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/env"
	"github.com/plzerfassung/plzerfassung/internal/pkg/metrics/counter"
)

// OpsRouter serves the health check, the fiber monitor and the usage counters.
type OpsRouter struct {
	counters *counter.Counter
	loc      *time.Location
}

func (o OpsRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.HealthRoute, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	auth := basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	})

	// fiber metrics
	app.Get(constants.MetricsRoute, auth, monitor.New(monitor.Config{Title: "PLZ Erfassung Metrics"}))
	app.Get(constants.CountersRoute, auth, o.handleCounters)
}

// handleCounters returns the usage counters of ?date=YYYY-MM-DD, default today.
func (o OpsRouter) handleCounters(c *fiber.Ctx) error {
	if o.counters == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "usage counters need a cache server",
		})
	}

	day := time.Now().In(o.loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, o.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "date must be YYYY-MM-DD",
			})
		}
		day = parsed
	}

	counts, err := o.counters.Snapshot(c.UserContext(), day)
	if err != nil {
		log.Errorf("[Counter] %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "counters unavailable",
		})
	}
	return c.JSON(fiber.Map{
		"date":     day.Format("2006-01-02"),
		"counters": counts,
	})
}

func NewOpsRouter(counters *counter.Counter, loc *time.Location) *OpsRouter {
	if loc == nil {
		loc = time.Local
	}
	return &OpsRouter{counters: counters, loc: loc}
}
