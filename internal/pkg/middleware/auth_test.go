package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plzerfassung/plzerfassung/internal/pkg/accesscontext"
	"github.com/plzerfassung/plzerfassung/internal/pkg/constants"
	"github.com/plzerfassung/plzerfassung/internal/pkg/session"
)

func newGatedApp(t *testing.T) *fiber.App {
	t.Helper()
	session.SetSessionStore(fibersession.New())
	t.Cleanup(func() { session.SetSessionStore(nil) })

	app := fiber.New()
	app.Use(AccessContextMiddleware)
	app.Get("/store/:value", func(c *fiber.Ctx) error {
		require.NoError(t, session.SetSessionValue(c, accesscontext.KeyPassword, c.Params("value")))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/", RequirePassword, func(c *fiber.Ctx) error {
		return c.SendString(accesscontext.GetPassword(c))
	})
	return app
}

func TestRequirePasswordRedirectsWithoutPassword(t *testing.T) {
	app := newGatedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, constants.PasswordRoute, resp.Header.Get("Location"))
}

func TestRequirePasswordRedirectsWhenInvalid(t *testing.T) {
	app := newGatedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/store/"+accesscontext.PasswordInvalid, nil))
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestRequirePasswordPassesWithPassword(t *testing.T) {
	app := newGatedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/store/geheim", nil))
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
