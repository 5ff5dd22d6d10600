package database

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlitePool is a fixed-size pool of SQLite connections. Connections are not
// safe for concurrent use; each goroutine takes its own and puts it back.
type sqlitePool struct {
	inner *sqlitex.Pool
	log   *logrus.Logger
	path  string
}

// sqlitePragmas are applied to every connection. foreign_keys must be on for
// the lobby_players cascade and the lobby reference check.
var sqlitePragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
	"PRAGMA temp_store=MEMORY",
}

func openSQLitePool(path string, size int, log *logrus.Logger) (*sqlitePool, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if size <= 0 {
		size = runtime.NumCPU()
		if size < 4 {
			size = 4
		}
	}

	inner, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize: size,
		PrepareConn: func(conn *sqlite.Conn) error {
			for _, pragma := range sqlitePragmas {
				if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
					return fmt.Errorf("sqlite: %s: %w", pragma, err)
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{"path": path, "pool_size": size}).Info("sqlite pool opened")
	return &sqlitePool{inner: inner, log: log, path: path}, nil
}

func (p *sqlitePool) take(ctx context.Context) (*sqlite.Conn, error) {
	conn, err := p.inner.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlite: take: %w", err)
	}
	conn.SetInterrupt(ctx.Done())
	return conn, nil
}

func (p *sqlitePool) put(conn *sqlite.Conn) {
	conn.SetInterrupt(nil)
	p.inner.Put(conn)
}

func (p *sqlitePool) close() error {
	if err := p.inner.Close(); err != nil {
		p.log.WithError(err).WithField("path", p.path).Error("sqlite pool close error")
		return fmt.Errorf("sqlite: closing %s: %w", p.path, err)
	}
	p.log.WithField("path", p.path).Info("sqlite pool closed")
	return nil
}
