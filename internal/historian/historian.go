// Package historian drains roster events from the Redis queue and persists
// them in batches to the roster_events table.
package historian

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/cache"
	"github.com/jason-s-yu/roster/internal/models"
)

// EventSink persists a batch of events. database.Store satisfies it.
type EventSink interface {
	InsertEvents(ctx context.Context, events []models.RosterEvent) error
}

// Config configures the historian. Client and Sink are required.
type Config struct {
	Client *redis.Client
	Sink   EventSink
	Logger *logrus.Logger

	// Queue defaults to cache.DefaultQueueName.
	Queue string

	// BatchSize flushes once this many events are buffered. Default 20.
	BatchSize int

	// FlushInterval flushes a partial batch this long after the last flush.
	// Default 500ms.
	FlushInterval time.Duration

	// PopTimeout bounds each BLPOP and therefore how quickly Run notices
	// cancellation. Redis accepts whole seconds; default 1s.
	PopTimeout time.Duration
}

const (
	defaultBatchSize     = 20
	defaultFlushInterval = 500 * time.Millisecond
	defaultPopTimeout    = time.Second

	// a failing sink keeps at most this many batches buffered
	maxBufferedBatches = 10
)

var ErrMissingDependency = errors.New("historian: redis client and event sink are required")

// Service captures roster events. It is not safe to call Run concurrently.
type Service struct {
	client        *redis.Client
	sink          EventSink
	log           *logrus.Logger
	queue         string
	batchSize     int
	flushInterval time.Duration
	popTimeout    time.Duration

	batch     []models.RosterEvent
	lastFlush time.Time
}

// New constructs a Service, filling defaults for zero fields.
func New(cfg *Config) (*Service, error) {
	if cfg == nil || cfg.Client == nil || cfg.Sink == nil {
		return nil, ErrMissingDependency
	}
	hs := &Service{
		client:        cfg.Client,
		sink:          cfg.Sink,
		log:           cfg.Logger,
		queue:         cfg.Queue,
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		popTimeout:    cfg.PopTimeout,
	}
	if hs.log == nil {
		hs.log = logrus.StandardLogger()
	}
	if hs.queue == "" {
		hs.queue = cache.DefaultQueueName
	}
	if hs.batchSize <= 0 {
		hs.batchSize = defaultBatchSize
	}
	if hs.flushInterval <= 0 {
		hs.flushInterval = defaultFlushInterval
	}
	if hs.popTimeout < time.Second {
		hs.popTimeout = defaultPopTimeout
	}
	hs.batch = make([]models.RosterEvent, 0, hs.batchSize)
	return hs, nil
}

// Run pops events until ctx is cancelled, then flushes what is buffered and
// returns nil.
func (hs *Service) Run(ctx context.Context) error {
	hs.log.WithFields(logrus.Fields{
		"queue":      hs.queue,
		"batch_size": hs.batchSize,
		"flush":      hs.flushInterval,
	}).Info("roster historian started")
	hs.lastFlush = time.Now()

	for ctx.Err() == nil {
		res, err := hs.client.BLPop(ctx, hs.popTimeout, hs.queue).Result()
		switch {
		case errors.Is(err, redis.Nil):
			// timed out with nothing queued
		case err != nil:
			if ctx.Err() != nil {
				break
			}
			hs.log.WithError(err).Error("BLPop failed")
			// back off so an unreachable Redis does not spin the loop
			select {
			case <-ctx.Done():
			case <-time.After(hs.popTimeout):
			}
		case len(res) == 2:
			// res[0] is the queue name and res[1] the payload.
			hs.appendPayload(res[1])
		}

		if len(hs.batch) >= hs.batchSize || (len(hs.batch) > 0 && time.Since(hs.lastFlush) >= hs.flushInterval) {
			hs.flush(ctx)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hs.flush(shutdownCtx)

	hs.log.Info("roster historian shutting down")
	return nil
}

func (hs *Service) appendPayload(payload string) {
	var ev models.RosterEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		hs.log.WithError(err).Warn("invalid roster event payload")
		return
	}
	if ev.LobbyID == "" || ev.Type == "" {
		hs.log.WithField("payload", payload).Warn("roster event without lobby or type")
		return
	}
	hs.batch = append(hs.batch, ev)
}

// flush writes the buffered batch in one call. On failure the batch is kept
// for the next attempt; InsertEvents skips IDs it has already stored.
func (hs *Service) flush(ctx context.Context) {
	hs.lastFlush = time.Now()
	if len(hs.batch) == 0 {
		return
	}

	if err := hs.sink.InsertEvents(ctx, hs.batch); err != nil {
		hs.log.WithError(err).WithField("buffered", len(hs.batch)).Error("failed to flush roster events")
		if limit := hs.batchSize * maxBufferedBatches; len(hs.batch) > limit {
			dropped := len(hs.batch) - limit
			hs.batch = append(hs.batch[:0], hs.batch[dropped:]...)
			hs.log.WithField("dropped", dropped).Error("dropping oldest roster events")
		}
		return
	}

	hs.log.WithField("count", len(hs.batch)).Debug("flushed roster events")
	hs.batch = make([]models.RosterEvent, 0, hs.batchSize)
}
