package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrefersLoadedFile(t *testing.T) {
	Env = map[string]string{"APP_PORT": "5000"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("APP_PORT", "6000")

	assert.Equal(t, "5000", GetEnv("APP_PORT", "4000"))
}

func TestGetEnvFallsBackToProcessEnv(t *testing.T) {
	Env = nil
	t.Setenv("REMOTE_API_URL", "https://example.org/exec")

	assert.Equal(t, "https://example.org/exec", GetEnv("REMOTE_API_URL", ""))
	assert.Equal(t, "fallback", GetEnv("NOT_SET_ANYWHERE_PLZ", "fallback"))
}

func TestGetDuration(t *testing.T) {
	Env = map[string]string{
		"GOOD": "90s",
		"BAD":  "soon",
	}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, 90*time.Second, GetDuration("GOOD", time.Second))
	assert.Equal(t, time.Second, GetDuration("BAD", time.Second))
	assert.Equal(t, time.Minute, GetDuration("MISSING_PLZ_DURATION", time.Minute))
}

func TestGetBool(t *testing.T) {
	Env = map[string]string{"ON": "true", "JUNK": "maybe"}
	t.Cleanup(func() { Env = nil })

	assert.True(t, GetBool("ON", false))
	assert.False(t, GetBool("JUNK", false))
	assert.True(t, GetBool("MISSING_PLZ_BOOL", true))
}

func TestIsDev(t *testing.T) {
	Env = map[string]string{"APP_ENV": "dev"}
	t.Cleanup(func() { Env = nil })
	assert.True(t, IsDev())

	Env = map[string]string{"APP_ENV": "prod"}
	assert.False(t, IsDev())
}

func TestGetInt(t *testing.T) {
	Env = map[string]string{"POST_RATE_LIMIT": "25", "BROKEN": "many"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, 25, GetInt("POST_RATE_LIMIT", 60))
	assert.Equal(t, 60, GetInt("BROKEN", 60))
	assert.Equal(t, 60, GetInt("MISSING_INT", 60))
}
