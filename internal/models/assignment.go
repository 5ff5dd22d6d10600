package models

import "time"

// Assignment binds a player to a (team, role) slot within a lobby. It mirrors a
// row in the lobby_players table.
type Assignment struct {
	LobbyID  string    `json:"lobbyId"`
	PlayerID string    `json:"playerId"`
	Team     Team      `json:"team"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Slot returns the position this assignment occupies.
func (a *Assignment) Slot() Slot {
	return Slot{Team: a.Team, Role: a.Role}
}
