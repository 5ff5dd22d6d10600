package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreSQLite(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &Config{
		DBDriver:   DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "lobbies.db"),
	}

	store, err := cfg.OpenStore(context.Background(), logger)
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Ping(context.Background()))
	assert.FileExists(t, cfg.SQLitePath)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &Config{DBDriver: "mysql"}

	_, err := cfg.OpenStore(context.Background(), logger)
	assert.ErrorContains(t, err, `unknown db driver "mysql"`)
}
