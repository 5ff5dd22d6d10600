package models

import "time"

// EventType names a roster change recorded in the lobby history.
type EventType string

const (
	EventLobbyCreated EventType = "lobby_created"
	EventLobbyClosed  EventType = "lobby_closed"
	EventLobbyDeleted EventType = "lobby_deleted"
	EventPlayerJoined EventType = "player_joined"
	EventPlayerLeft   EventType = "player_left"
	EventPlayerKicked EventType = "player_kicked"
)

// RosterEvent is a single entry of a lobby's history. Team, Role and ExternalID
// are empty for lobby-level events.
type RosterEvent struct {
	ID         string    `json:"id"`
	LobbyID    string    `json:"lobbyId"`
	GuildID    string    `json:"guildId,omitempty"`
	Type       EventType `json:"type"`
	ExternalID string    `json:"discordId,omitempty"`
	Team       Team      `json:"team,omitempty"`
	Role       Role      `json:"role,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
