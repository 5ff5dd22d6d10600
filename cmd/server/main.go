// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/jason-s-yu/roster/internal/cache"
	"github.com/jason-s-yu/roster/internal/config"
	"github.com/jason-s-yu/roster/internal/discord"
	"github.com/jason-s-yu/roster/internal/handlers"
	"github.com/jason-s-yu/roster/internal/heartbeat"
	"github.com/jason-s-yu/roster/internal/historian"
	"github.com/jason-s-yu/roster/internal/roster"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	cfg.AddFlags(pflag.CommandLine)
	pflag.Parse()

	logger := cfg.NewLogger()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cfg.OpenStore(ctx, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	engineCfg := &roster.Config{Store: store, Logger: logger}

	var historianSvc *historian.Service
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		engineCfg.Publisher = cache.NewEventPublisher(rdb, cfg.EventQueue)
		logger.WithFields(logrus.Fields{"redis": cfg.RedisAddr, "queue": cfg.EventQueue}).Info("publishing roster events")

		if cfg.RunHistorian {
			historianSvc, err = historian.New(&historian.Config{
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
		}
	}

	engine, err := roster.New(engineCfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: net.JoinHostPort("", cfg.Port),
		Handler: handlers.NewRouter(&handlers.RouterConfig{
			Service:    engine,
			Logger:     logger,
			CORSOrigin: cfg.CORSOrigin,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.DiscordApplicationID,
			GuildID:       cfg.DiscordGuildID,
			Service:       engine,
			Logger:        logger,
		})
		if err != nil {
			return err
		}
	}

	var pinger *heartbeat.Pinger
	if cfg.KeepaliveURL != "" {
		pinger, err = heartbeat.New(&heartbeat.Config{
			URL:      cfg.KeepaliveURL,
			Interval: cfg.KeepaliveInterval,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if bot != nil {
		g.Go(func() error { return bot.Run(gctx) })
	}
	if historianSvc != nil {
		g.Go(func() error { return historianSvc.Run(gctx) })
	}
	if pinger != nil {
		g.Go(func() error { return pinger.Run(gctx) })
	}

	return g.Wait()
}
