// internal/historian/historian_test.go
package historian

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jason-s-yu/roster/internal/cache"
	"github.com/jason-s-yu/roster/internal/database"
	"github.com/jason-s-yu/roster/internal/database/mocks"
	"github.com/jason-s-yu/roster/internal/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client, err := cache.Connect(context.Background(), mr.Addr(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// start runs the historian in the background and returns a stop function
// that cancels it and waits for Run to return.
func start(t *testing.T, hs *Service) func() {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, hs.Run(ctx))
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = New(&Config{Sink: mocks.NewMockStore(gomock.NewController(t))})
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestNewDefaults(t *testing.T) {
	_, client := newRedis(t)
	hs, err := New(&Config{Client: client, Sink: mocks.NewMockStore(gomock.NewController(t)), PopTimeout: time.Millisecond})
	require.NoError(t, err)

	assert.Equal(t, cache.DefaultQueueName, hs.queue)
	assert.Equal(t, defaultBatchSize, hs.batchSize)
	assert.Equal(t, defaultFlushInterval, hs.flushInterval)
	assert.Equal(t, time.Second, hs.popTimeout)
}

func TestHistorianPersistsPublishedEvents(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)

	store, err := database.OpenSQLite(ctx, &database.SQLiteConfig{
		Config: database.Config{Logger: quietLogger()},
		Path:   filepath.Join(t.TempDir(), "roster.db"),
	})
	require.NoError(t, err)
	defer store.Close()

	pub := cache.NewEventPublisher(client, "")
	now := time.Date(2025, 4, 5, 20, 0, 0, 0, time.UTC)
	for i, typ := range []models.EventType{models.EventLobbyCreated, models.EventPlayerJoined, models.EventPlayerKicked} {
		require.NoError(t, pub.PublishRosterEvent(ctx, models.RosterEvent{
			ID:         string(typ),
			LobbyID:    "l1",
			Type:       typ,
			OccurredAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	hs, err := New(&Config{
		Client:        client,
		Sink:          store,
		Logger:        quietLogger(),
		BatchSize:     2,
		FlushInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	stop := start(t, hs)
	defer stop()

	require.Eventually(t, func() bool {
		events, err := store.ListEvents(ctx, "l1", 0)
		return err == nil && len(events) == 3
	}, 5*time.Second, 20*time.Millisecond)

	events, err := store.ListEvents(ctx, "l1", 0)
	require.NoError(t, err)
	assert.Equal(t, models.EventPlayerKicked, events[0].Type)
	assert.Equal(t, models.EventLobbyCreated, events[2].Type)
}

func TestHistorianFlushesOnShutdown(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockStore(ctrl)

	var got []models.RosterEvent
	sink.EXPECT().InsertEvents(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, events []models.RosterEvent) error {
			got = append(got, events...)
			return nil
		})

	hs, err := New(&Config{
		Client:        client,
		Sink:          sink,
		Logger:        quietLogger(),
		BatchSize:     100,
		FlushInterval: time.Hour,
	})
	require.NoError(t, err)
	stop := start(t, hs)

	require.NoError(t, cache.NewEventPublisher(client, "").PublishRosterEvent(ctx,
		models.RosterEvent{ID: "e1", LobbyID: "l1", Type: models.EventLobbyClosed}))
	require.Eventually(t, func() bool {
		return !mr.Exists(cache.DefaultQueueName)
	}, 5*time.Second, 10*time.Millisecond)

	stop()
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestHistorianSkipsInvalidPayloads(t *testing.T) {
	_, client := newRedis(t)
	hs, err := New(&Config{Client: client, Sink: mocks.NewMockStore(gomock.NewController(t)), Logger: quietLogger()})
	require.NoError(t, err)

	hs.appendPayload("not json")
	hs.appendPayload(`{"id":"e1"}`)
	assert.Empty(t, hs.batch)

	hs.appendPayload(`{"id":"e2","lobbyId":"l1","type":"player_left"}`)
	require.Len(t, hs.batch, 1)
	assert.Equal(t, models.EventPlayerLeft, hs.batch[0].Type)
}

func TestFlushRetainsBatchOnFailure(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockStore(ctrl)

	gomock.InOrder(
		sink.EXPECT().InsertEvents(gomock.Any(), gomock.Len(2)).Return(errors.New("database is locked")),
		sink.EXPECT().InsertEvents(gomock.Any(), gomock.Len(2)).Return(nil),
	)

	hs, err := New(&Config{Client: client, Sink: sink, Logger: quietLogger(), BatchSize: 2})
	require.NoError(t, err)
	hs.appendPayload(`{"id":"e1","lobbyId":"l1","type":"player_joined"}`)
	hs.appendPayload(`{"id":"e2","lobbyId":"l1","type":"player_left"}`)

	hs.flush(ctx)
	assert.Len(t, hs.batch, 2)

	hs.flush(ctx)
	assert.Empty(t, hs.batch)
}

func TestFlushDropsOldestBeyondLimit(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockStore(ctrl)
	sink.EXPECT().InsertEvents(gomock.Any(), gomock.Any()).Return(errors.New("down"))

	hs, err := New(&Config{Client: client, Sink: sink, Logger: quietLogger(), BatchSize: 1})
	require.NoError(t, err)
	for i := 0; i < maxBufferedBatches+5; i++ {
		hs.batch = append(hs.batch, models.RosterEvent{ID: string(rune('a' + i)), LobbyID: "l1", Type: models.EventPlayerJoined})
	}

	hs.flush(ctx)
	require.Len(t, hs.batch, maxBufferedBatches)
	assert.Equal(t, "f", hs.batch[0].ID)
}
