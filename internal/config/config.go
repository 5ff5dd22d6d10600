// Package config loads process settings from the environment (and a .env file
// when present), with command-line overrides bound through pflag.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the full set of settings shared by cmd/server and cmd/historian.
type Config struct {
	Port string

	DBDriver       string
	DataDir        string
	SQLitePath     string
	SQLitePoolSize int
	DatabaseURL    string

	// RedisAddr empty disables event publishing and the historian.
	RedisAddr  string
	RedisDB    int
	EventQueue string

	// RunHistorian drains the event queue inside cmd/server.
	RunHistorian   bool
	HistorianBatch int
	HistorianFlush time.Duration

	KeepaliveURL      string
	KeepaliveInterval time.Duration

	DiscordToken         string
	DiscordApplicationID string
	DiscordGuildID       string

	LogLevel   string
	LogFormat  string
	CORSOrigin string
}

// Load reads every setting from the environment, applying defaults.
func Load() *Config {
	dataDir := getEnv("ROSTER_DATA_DIR", ".data")
	return &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:       strings.ToLower(getEnv("ROSTER_DB_DRIVER", DriverSQLite)),
		DataDir:        dataDir,
		SQLitePath:     getEnv("ROSTER_SQLITE_PATH", filepath.Join(dataDir, "lobbies.db")),
		SQLitePoolSize: getEnvInt("ROSTER_SQLITE_POOL_SIZE", 0),
		DatabaseURL:    postgresURL(),

		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		EventQueue: getEnv("ROSTER_EVENT_QUEUE", "roster_events"),

		RunHistorian:   getEnvBool("ROSTER_HISTORIAN", false),
		HistorianBatch: getEnvInt("HISTORIAN_BATCH_SIZE", 20),
		HistorianFlush: time.Duration(getEnvInt("HISTORIAN_FLUSH_MS", 500)) * time.Millisecond,

		KeepaliveURL:      getEnv("KEEPALIVE_URL", ""),
		KeepaliveInterval: getEnvDuration("KEEPALIVE_INTERVAL", 14*time.Minute),

		DiscordToken:         getEnv("DISCORD_TOKEN", ""),
		DiscordApplicationID: getEnv("DISCORD_APPLICATION_ID", ""),
		DiscordGuildID:       getEnv("DISCORD_GUILD_ID", ""),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}
}

// postgresURL prefers DATABASE_URL and otherwise assembles one from the
// POSTGRES_*/PG_* variables. It returns "" when neither is set.
func postgresURL() string {
	if u := os.Getenv("DATABASE_URL"); u != "" {
		return u
	}
	host := os.Getenv("PG_HOST")
	if host == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD")),
		Host:   host + ":" + getEnv("PG_PORT", "5432"),
		Path:   "/" + os.Getenv("PG_DATABASE"),
	}
	return u.String()
}

// AddFlags binds command-line overrides for the settings an operator most
// often changes. Defaults are the values already loaded from the environment.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "HTTP listen port")
	fs.StringVar(&c.DBDriver, "db-driver", c.DBDriver, "storage backend: sqlite or postgres")
	fs.StringVar(&c.SQLitePath, "sqlite-path", c.SQLitePath, "SQLite database file")
	fs.StringVar(&c.DatabaseURL, "database-url", c.DatabaseURL, "Postgres connection URL")
	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "Redis address for roster events (empty disables)")
	fs.StringVar(&c.EventQueue, "event-queue", c.EventQueue, "Redis list roster events are pushed to")
	fs.BoolVar(&c.RunHistorian, "historian", c.RunHistorian, "drain the event queue in this process")
	fs.StringVar(&c.KeepaliveURL, "keepalive-url", c.KeepaliveURL, "URL pinged periodically (empty disables)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// Validate reports every problem with the settings at once.
func (c *Config) Validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Port))
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite path is required"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("postgres driver needs DATABASE_URL or PG_HOST"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown db driver %q", c.DBDriver))
	}

	if c.RunHistorian && c.RedisAddr == "" {
		errs = append(errs, errors.New("historian needs REDIS_ADDR"))
	}
	if c.HistorianBatch <= 0 {
		errs = append(errs, fmt.Errorf("historian batch size must be positive, got %d", c.HistorianBatch))
	}
	if c.KeepaliveURL != "" && c.KeepaliveInterval <= 0 {
		errs = append(errs, errors.New("keepalive interval must be positive"))
	}
	if c.DiscordToken != "" && c.DiscordApplicationID == "" {
		errs = append(errs, errors.New("DISCORD_APPLICATION_ID is required with DISCORD_TOKEN"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// EnsureDataDir creates the directory holding the SQLite file.
func (c *Config) EnsureDataDir() error {
	if c.DBDriver != DriverSQLite {
		return nil
	}
	dir := filepath.Dir(c.SQLitePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return nil
}

// NewLogger builds the process logger from LogLevel and LogFormat.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// getEnvDuration accepts Go durations ("90s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
