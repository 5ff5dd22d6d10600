// cmd/historian drains roster events from the Redis queue and persists them to
// the lobby history table. Run it when the server itself does not drain the
// queue (ROSTER_HISTORIAN=false).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/jason-s-yu/roster/internal/cache"
	"github.com/jason-s-yu/roster/internal/config"
	"github.com/jason-s-yu/roster/internal/historian"
)

func main() {
	cfg := config.Load()
	cfg.AddFlags(pflag.CommandLine)
	pflag.Parse()

	logger := cfg.NewLogger()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	if cfg.RedisAddr == "" {
		logger.Fatal("historian needs REDIS_ADDR")
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("historian exited")
	}
	logger.Info("historian stopped")
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cfg.OpenStore(ctx, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	svc, err := historian.New(&historian.Config{
		Client:        rdb,
		Sink:          store,
		Logger:        logger,
		Queue:         cfg.EventQueue,
		BatchSize:     cfg.HistorianBatch,
		FlushInterval: cfg.HistorianFlush,
	})
	if err != nil {
		return err
	}

	return svc.Run(ctx)
}
