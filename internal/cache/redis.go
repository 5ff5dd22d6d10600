// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jason-s-yu/roster/internal/models"
)

// DefaultQueueName is the Redis list (queue) name for roster events.
const DefaultQueueName = "roster_events"

// Connect creates a Redis client for addr/db and verifies it with a PING.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:                  addr,
		DB:                    db,
		ContextTimeoutEnabled: true,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// EventPublisher pushes roster events onto a Redis list for the historian.
type EventPublisher struct {
	client *redis.Client
	queue  string
}

// NewEventPublisher returns a publisher writing to queue, or DefaultQueueName
// when queue is empty.
func NewEventPublisher(client *redis.Client, queue string) *EventPublisher {
	if queue == "" {
		queue = DefaultQueueName
	}
	return &EventPublisher{client: client, queue: queue}
}

// Queue returns the list name events are pushed to.
func (p *EventPublisher) Queue() string {
	return p.queue
}

// PublishRosterEvent serializes the event to JSON, then pushes it to the Redis queue.
// This does not block the calling logic (other than a quick network send).
func (p *EventPublisher) PublishRosterEvent(ctx context.Context, event models.RosterEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal RosterEvent: %w", err)
	}

	if err := p.client.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.queue, err)
	}
	return nil
}
