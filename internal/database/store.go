// internal/database/store.go
package database

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/jason-s-yu/roster/internal/database Store,Queries

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/common/clock"
	"github.com/jason-s-yu/roster/internal/common/uuid"
	"github.com/jason-s-yu/roster/internal/models"
)

// Queries is the set of roster operations. It is implemented both by a Store
// (each call runs on its own) and by the handle passed to Store.InTx (all calls
// share one transaction).
type Queries interface {
	// CreateLobby inserts a new active lobby with a fresh identifier.
	CreateLobby(ctx context.Context, guildID, name string) (*models.Lobby, error)

	// GetLobby returns the lobby or ErrLobbyNotFound.
	GetLobby(ctx context.Context, lobbyID string) (*models.Lobby, error)

	// ListLobbies returns every lobby of the guild in insertion order.
	ListLobbies(ctx context.Context, guildID string) ([]models.Lobby, error)

	// CloseLobby marks the lobby inactive. Closing a closed lobby succeeds.
	CloseLobby(ctx context.Context, lobbyID string) error

	// DeleteLobby removes the lobby together with its assignments.
	DeleteLobby(ctx context.Context, lobbyID string) error

	// FindOrCreatePlayer returns the player with externalID, creating it if
	// needed. A non-empty displayName refreshes the stored one.
	FindOrCreatePlayer(ctx context.Context, externalID, displayName string) (*models.Player, error)

	// InsertAssignment occupies a slot. It fails with ErrSlotTaken,
	// ErrAlreadyInLobby or ErrLobbyNotFound based on the violated constraint.
	InsertAssignment(ctx context.Context, a *models.Assignment) error

	// RemoveAssignmentByPlayer frees the slot held by externalID or returns
	// ErrNotInLobby.
	RemoveAssignmentByPlayer(ctx context.Context, lobbyID, externalID string) error

	// RemoveAssignmentBySlot frees the given slot or returns ErrSlotEmpty.
	RemoveAssignmentBySlot(ctx context.Context, lobbyID string, team models.Team, role models.Role) error

	// CountAssignments returns the number of occupied slots.
	CountAssignments(ctx context.Context, lobbyID string) (int, error)

	// GetRoster returns every occupant of the lobby in join order.
	GetRoster(ctx context.Context, lobbyID string) ([]models.RosterEntry, error)

	// InsertEvents appends history entries. Entries whose ID already exists are
	// skipped so redelivered batches are harmless.
	InsertEvents(ctx context.Context, events []models.RosterEvent) error

	// ListEvents returns up to limit history entries of a lobby, newest first.
	ListEvents(ctx context.Context, lobbyID string, limit int) ([]models.RosterEvent, error)
}

// Store owns the connection pool of a roster database.
type Store interface {
	Queries

	// InTx runs fn inside a single transaction. The transaction commits when fn
	// returns nil and rolls back otherwise; fn's error is returned unchanged.
	InTx(ctx context.Context, fn func(q Queries) error) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the pool.
	Close() error
}

// Config holds the dependencies shared by every store backend.
type Config struct {
	Logger        *logrus.Logger
	UUIDGenerator uuid.UUID
	Clock         clock.Clock
}

// deps is the resolved form of Config.
type deps struct {
	log   *logrus.Logger
	ids   uuid.UUID
	clock clock.Clock
}

func newDeps(cfg Config) deps {
	d := deps{log: cfg.Logger, ids: cfg.UUIDGenerator, clock: cfg.Clock}
	if d.log == nil {
		d.log = logrus.New()
		d.log.SetLevel(logrus.WarnLevel)
	}
	if d.ids == nil {
		d.ids = uuid.New()
	}
	if d.clock == nil {
		d.clock = &clock.DefaultClock{}
	}
	return d
}

// DefaultEventLimit caps ListEvents when the caller passes a non-positive limit.
const DefaultEventLimit = 100
