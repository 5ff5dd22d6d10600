package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so a developer's .env does not leak in.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "ROSTER_DB_DRIVER", "ROSTER_DATA_DIR", "ROSTER_SQLITE_PATH", "ROSTER_SQLITE_POOL_SIZE",
		"DATABASE_URL", "POSTGRES_USER", "POSTGRES_PASSWORD", "PG_HOST", "PG_PORT", "PG_DATABASE",
		"REDIS_ADDR", "REDIS_DB", "ROSTER_EVENT_QUEUE", "ROSTER_HISTORIAN", "HISTORIAN_BATCH_SIZE",
		"HISTORIAN_FLUSH_MS", "KEEPALIVE_URL", "KEEPALIVE_INTERVAL", "DISCORD_TOKEN",
		"DISCORD_APPLICATION_ID", "DISCORD_GUILD_ID", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGIN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, filepath.Join(".data", "lobbies.db"), cfg.SQLitePath)
	assert.Equal(t, "roster_events", cfg.EventQueue)
	assert.Equal(t, 500*time.Millisecond, cfg.HistorianFlush)
	assert.Equal(t, 14*time.Minute, cfg.KeepaliveInterval)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Empty(t, cfg.DatabaseURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ROSTER_DB_DRIVER", "Postgres")
	t.Setenv("POSTGRES_USER", "roster")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_DATABASE", "lobbies")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ROSTER_HISTORIAN", "true")
	t.Setenv("KEEPALIVE_INTERVAL", "90")
	t.Setenv("HISTORIAN_BATCH_SIZE", "not a number")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://roster:s3cret@db:5432/lobbies", cfg.DatabaseURL)
	assert.True(t, cfg.RunHistorian)
	assert.Equal(t, 90*time.Second, cfg.KeepaliveInterval)
	assert.Equal(t, 20, cfg.HistorianBatch)
	assert.NoError(t, cfg.Validate())

	t.Setenv("DATABASE_URL", "postgres://override/db")
	assert.Equal(t, "postgres://override/db", Load().DatabaseURL)
}

func TestValidateCollectsErrors(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	cfg.Port = "http"
	cfg.DBDriver = "mysql"
	cfg.RunHistorian = true
	cfg.LogLevel = "loud"
	cfg.DiscordToken = "token"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"invalid port", "unknown db driver", "REDIS_ADDR", "invalid log level", "DISCORD_APPLICATION_ID"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestAddFlagsOverridesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")
	cfg := Load()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--port", "5000", "--db-driver", "postgres", "--database-url", "postgres://x/y"}))

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.NoError(t, cfg.Validate())
}

func TestEnsureDataDir(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "nested", "dir", "lobbies.db")

	require.NoError(t, cfg.EnsureDataDir())
	assert.DirExists(t, filepath.Dir(cfg.SQLitePath))
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
