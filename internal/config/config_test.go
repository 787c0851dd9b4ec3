package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, localDatabaseURL, cfg.DatabaseURL)
	assert.False(t, cfg.DatabaseSSL)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 25, cfg.LoginRateLimitRequests)
	assert.False(t, cfg.Production)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://app@db:5432/fullness")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("LOGIN_RATE_LIMIT_REQUESTS", "5")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Production)
	// Production implies TLS on the database connection unless overridden.
	assert.True(t, cfg.DatabaseSSL)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 5, cfg.LoginRateLimitRequests)
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.Port = "abc"
	cfg.JWTSecret = ""
	cfg.RateLimitRequests = 0
	err := cfg.Validate()
	require.Error(t, err)
	// All problems are reported at once.
	assert.Contains(t, err.Error(), "port")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "rate limit")
}

func TestDSN(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://u@h:5432/db"}
	assert.Equal(t, "postgres://u@h:5432/db?sslmode=disable", cfg.DSN())

	cfg.DatabaseSSL = true
	assert.Equal(t, "postgres://u@h:5432/db?sslmode=require", cfg.DSN())

	// An explicit sslmode in the URL wins over the toggle.
	cfg.DatabaseURL = "postgres://u@h:5432/db?sslmode=verify-full"
	assert.Equal(t, "postgres://u@h:5432/db?sslmode=verify-full", cfg.DSN())

	cfg.DatabaseURL = "postgres://u@h:5432/db?application_name=x"
	assert.Equal(t, "postgres://u@h:5432/db?application_name=x&sslmode=require", cfg.DSN())
}
