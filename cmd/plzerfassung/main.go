package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/plzerfassung/plzerfassung/app/repository"
	"github.com/plzerfassung/plzerfassung/internal/pkg/archive"
	"github.com/plzerfassung/plzerfassung/internal/pkg/cache"
	"github.com/plzerfassung/plzerfassung/internal/pkg/env"
	"github.com/plzerfassung/plzerfassung/internal/pkg/metrics/counter"
	"github.com/plzerfassung/plzerfassung/internal/pkg/plz"
	"github.com/plzerfassung/plzerfassung/internal/pkg/remote"
	"github.com/plzerfassung/plzerfassung/internal/pkg/router"
	"github.com/plzerfassung/plzerfassung/views"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	directory, err := plz.LoadFile(env.GetEnv("PLZ_DATA_FILE", ""))
	if err != nil {
		panic(fmt.Sprintf("could not load PLZ directory: %v", err))
	}
	fiberlog.Infof("[PLZ] loaded %d postal codes", directory.Len())
	if directory.Embedded() && !env.IsDev() {
		fiberlog.Warnf("[PLZ] using the built-in sample directory (%d postal codes), set PLZ_DATA_FILE to the full list", directory.Len())
	}

	endpoint := env.GetEnv("REMOTE_API_URL", "")
	if endpoint == "" {
		fiberlog.Warn("[Remote] REMOTE_API_URL is not set, every backend call will fail")
	}
	client := remote.NewClient(endpoint, env.GetDuration("REMOTE_API_TIMEOUT", 15*time.Second))

	var reportCache repository.ReportCache
	var counters *counter.Counter
	if cache.IsConfigured() {
		cache.SetupCache()
		reportCache = cache.NewStore(cache.GetClient(), "plz:report:")
		counters = counter.New(cache.GetClient(), "plz:counters:")
	}
	factory := repository.NewFactory(client, reportCache, env.GetDuration("REPORT_CACHE_TTL", time.Hour))

	deps := router.Dependencies{
		Repositories: factory,
		Directory:    directory,
		Counters:     counters,
		Location:     env.Location(),
	}
	if archiver := setupArchive(); archiver != nil {
		deps.Archiver = archiver
	}

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/plzerfassung to project root
		"../../../", // Fallback
	}

	// Find the directory holding the static assets
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public/assets"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		fiberlog.Warn("[App] public/assets not found, static files are not served")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     views.NewEngine(),
		BodyLimit: 64 * 1024,
	})

	// answer favicon requests without touching the session
	app.Use(favicon.New(favicon.Config{
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery, request ids and logging
	app.Use(recover.New(), requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}), logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// static files
	if basePath != "" {
		app.Static("/", basePath+"public/assets", fiber.Static{
			CacheDuration: 15 * time.Second,
			Compress:      true,
		})
	}

	// ROUTER
	router.InstallRouter(app, deps)

	return app
}

// setupArchive returns nil when archiving is disabled or misconfigured.
func setupArchive() *archive.Client {
	cfg, err := archive.LoadConfig()
	if err != nil {
		fiberlog.Errorf("[Archive] invalid configuration, archive disabled: %v", err)
		return nil
	}
	if !cfg.IsEnabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := archive.NewClient(ctx, cfg)
	if err != nil {
		fiberlog.Errorf("[Archive] could not create S3 client, archive disabled: %v", err)
		return nil
	}
	return client
}
