package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/plzerfassung/plzerfassung/internal/pkg/cache"
	"github.com/plzerfassung/plzerfassung/internal/pkg/env"
)

var sessionStore *session.Store

// NewSessionStore keeps sessions in Redis when a cache server is configured
// and in process memory otherwise.
func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev() && env.GetBool("COOKIE_SECURE", false),
		CookieSameSite: "Lax",
		Expiration:     env.GetDuration("SESSION_LIFETIME", 30*24*time.Hour),
		KeyLookup:      "cookie:plz_session",
	}

	if cache.IsConfigured() {
		port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
		if err != nil {
			port = 6379
		}
		// database 1, the report cache uses database 0
		cfg.Storage = redis.New(redis.Config{
			Host:     env.GetEnv("CACHE_HOST", "localhost"),
			Port:     port,
			Password: env.GetEnv("CACHE_PASSWORD", ""),
			Database: 1,
			Reset:    false,
		})
	}

	sessionStore = session.New(cfg)
	return sessionStore
}

// SetSessionStore replaces the global store, used by tests.
func SetSessionStore(store *session.Store) {
	sessionStore = store
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the user's individual session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return errors.New("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the user's individual session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}

// Destroy removes the user's session including its cookie.
func Destroy(c *fiber.Ctx) error {
	if sessionStore == nil {
		return errors.New("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	return sess.Destroy()
}

// Get returns the session of the current request. Use it when several
// values change together so they are written with a single Save.
func Get(c *fiber.Ctx) (*session.Session, error) {
	if sessionStore == nil {
		return nil, errors.New("session store not initialized")
	}
	return sessionStore.Get(c)
}
