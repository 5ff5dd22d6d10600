// Package heartbeat periodically pings a URL so that hosting platforms which
// idle inactive instances keep the service running.
package heartbeat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// Config configures the pinger. URL and Interval are required.
type Config struct {
	URL      string
	Interval time.Duration
	Logger   *logrus.Logger

	// RetryMax is the number of retries per ping. Default 3.
	RetryMax int
	// RetryWaitMin is the first backoff between retries. Default 1s.
	RetryWaitMin time.Duration
	// Timeout bounds a single attempt. Default 10s.
	Timeout time.Duration
}

var ErrInvalidConfig = errors.New("heartbeat: url and positive interval are required")

// Pinger sends GET requests to URL every Interval.
type Pinger struct {
	url      string
	interval time.Duration
	client   *retryablehttp.Client
	log      *logrus.Logger
}

func New(cfg *Config) (*Pinger, error) {
	if cfg == nil || cfg.URL == "" || cfg.Interval <= 0 {
		return nil, ErrInvalidConfig
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{log: log}
	client.RetryMax = 3
	if cfg.RetryMax > 0 {
		client.RetryMax = cfg.RetryMax
	}
	if cfg.RetryWaitMin > 0 {
		client.RetryWaitMin = cfg.RetryWaitMin
		if client.RetryWaitMax < cfg.RetryWaitMin {
			client.RetryWaitMax = cfg.RetryWaitMin
		}
	}
	client.HTTPClient.Timeout = 10 * time.Second
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}

	return &Pinger{url: cfg.URL, interval: cfg.Interval, client: client, log: log}, nil
}

// Run pings every interval until ctx is cancelled. Failed pings are logged and
// never end the loop.
func (p *Pinger) Run(ctx context.Context) error {
	p.log.WithFields(logrus.Fields{"url": p.url, "interval": p.interval}).Info("keep-alive started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.Ping(ctx); err != nil && ctx.Err() == nil {
				p.log.WithError(err).WithField("url", p.url).Warn("keep-alive ping failed")
			}
		}
	}
}

// Ping sends one request, retrying on connection errors and 5xx responses.
func (p *Pinger) Ping(ctx context.Context) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("building ping request: %w", err)
	}
	req.Header.Set("User-Agent", "roster-keepalive")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("ping %s: unexpected status %d", p.url, resp.StatusCode)
	}
	p.log.WithField("status", resp.StatusCode).Debug("keep-alive ping ok")
	return nil
}

// leveledLogger adapts logrus to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log *logrus.Logger
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Info(msg)
}

// Debug covers the per-request "performing request" chatter.
func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Warn(msg)
}

var _ retryablehttp.LeveledLogger = leveledLogger{}
