package models

import "time"

// Player is a participant known to the service. ExternalID is the caller-supplied
// platform identity (e.g. a Discord user ID) and is unique across all players.
type Player struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"discordId"`
	DisplayName string    `json:"discordName"`
	CreatedAt   time.Time `json:"createdAt"`
}
