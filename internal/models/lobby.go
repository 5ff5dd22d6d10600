// internal/models/lobby.go
package models

import "time"

// Lobby represents a row in the lobbies table. A lobby belongs to a single guild
// and holds two teams of five role slots each.
type Lobby struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guildId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Closed reports whether the lobby no longer accepts roster changes.
func (l *Lobby) Closed() bool {
	return !l.IsActive
}
