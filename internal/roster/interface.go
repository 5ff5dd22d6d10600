package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_roster.go github.com/jason-s-yu/roster/internal/roster Service,Publisher

import (
	"context"

	"github.com/jason-s-yu/roster/internal/models"
)

// Service decides which roster changes are legal and applies them atomically.
type Service interface {
	// Join puts a player into a (team, role) slot of an active lobby.
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave frees the slot held by the player.
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// Kick frees a slot regardless of who holds it.
	Kick(ctx context.Context, input *KickInput) (*KickOutput, error)

	// BuildRosterView returns the lobby with all ten slots laid out.
	BuildRosterView(ctx context.Context, lobbyID string) (*models.RosterView, error)

	CreateLobby(ctx context.Context, input *CreateLobbyInput) (*models.Lobby, error)
	GetLobby(ctx context.Context, lobbyID string) (*models.Lobby, error)
	ListLobbies(ctx context.Context, guildID string) ([]models.Lobby, error)
	CloseLobby(ctx context.Context, lobbyID string) error
	DeleteLobby(ctx context.Context, lobbyID string) error
	CountPlayers(ctx context.Context, lobbyID string) (int, error)

	// LobbyHistory returns up to limit recorded events, newest first.
	LobbyHistory(ctx context.Context, lobbyID string, limit int) ([]models.RosterEvent, error)
}

// Publisher forwards committed roster changes to the event queue.
type Publisher interface {
	PublishRosterEvent(ctx context.Context, event models.RosterEvent) error
}
