package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("LOGIN_WINDOW", "")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Minute, cfg.LoginWindow)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file:gym.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:gym.db", cfg.DBUrl)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.LoginMaxAttempts)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("JWT_TTL", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid JWT_TTL")
	})

	t.Run("default secret in production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "changeme")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("zero login window", func(t *testing.T) {
		t.Setenv("LOGIN_WINDOW", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "LOGIN_WINDOW must be > 0")
	})

	t.Run("negative jwt ttl", func(t *testing.T) {
		t.Setenv("JWT_TTL", "-1h")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_TTL must be > 0")
	})
}
