package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gigboard?sslmode=disable")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "gigboard_session", cfg.SessionCookie)
	assert.Equal(t, 14*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gigboard?sslmode=disable")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 5, cfg.DBMaxOpenConns)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gigboard?sslmode=disable")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, 14*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
}
