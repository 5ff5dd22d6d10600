package config

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/database"
)

// OpenStore opens the storage backend selected by DBDriver.
func (c *Config) OpenStore(ctx context.Context, log *logrus.Logger) (database.Store, error) {
	base := database.Config{Logger: log}

	switch c.DBDriver {
	case DriverSQLite:
		if err := c.EnsureDataDir(); err != nil {
			return nil, err
		}
		store, err := database.OpenSQLite(ctx, &database.SQLiteConfig{
			Config:   base,
			Path:     c.SQLitePath,
			PoolSize: c.SQLitePoolSize,
		})
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		log.WithField("path", c.SQLitePath).Info("using sqlite store")
		return store, nil
	case DriverPostgres:
		store, err := database.OpenPostgres(ctx, &database.PostgresConfig{Config: base, URL: c.DatabaseURL})
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", c.DBDriver)
	}
}
