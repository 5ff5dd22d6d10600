package roster

import (
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/common/clock"
	"github.com/jason-s-yu/roster/internal/common/uuid"
	"github.com/jason-s-yu/roster/internal/database"
	"github.com/jason-s-yu/roster/internal/models"
)

// Config wires the engine to its dependencies. Only Store is required.
type Config struct {
	Store database.Store

	// Publisher receives a RosterEvent after every committed change. Nil
	// disables event publishing.
	Publisher Publisher

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *logrus.Logger
}

type JoinInput struct {
	LobbyID     string
	ExternalID  string
	DisplayName string
	Team        string
	Role        string
}

type JoinOutput struct {
	Assignment models.Assignment
	Player     models.Player
}

type LeaveInput struct {
	LobbyID    string
	ExternalID string
}

type LeaveOutput struct {
	Slot models.Slot
}

type KickInput struct {
	LobbyID string
	Team    string
	Role    string
}

// KickOutput names the player that was removed from the slot.
type KickOutput struct {
	ExternalID  string
	DisplayName string
}

type CreateLobbyInput struct {
	GuildID string
	Name    string
}
