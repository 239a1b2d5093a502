package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "@hourly", cfg.SummaryCron)
	assert.True(t, cfg.OpenAPIValidation)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=restaurant sslmode=disable", cfg.DB.DSN())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESTAURANT_DB_HOST", "db.internal")
	t.Setenv("RESTAURANT_DB_PORT", "6543")
	t.Setenv("RESTAURANT_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestConfig_SlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
}
