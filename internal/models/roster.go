// internal/models/roster.go
package models

import "time"

// RosterEntry is a joined view of an assignment and its player.
type RosterEntry struct {
	ExternalID  string    `json:"discordId"`
	DisplayName string    `json:"discordName"`
	Team        Team      `json:"team"`
	Role        Role      `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// SlotPlayer is the occupant shown in a roster slot.
type SlotPlayer struct {
	ExternalID  string `json:"discordId"`
	DisplayName string `json:"discordName"`
}

// SlotView is a single role slot of a team. Player is nil when the slot is empty
// and is encoded as an explicit null.
type SlotView struct {
	Role   Role        `json:"role"`
	Player *SlotPlayer `json:"player"`
}

// Empty reports whether nobody occupies the slot.
func (s SlotView) Empty() bool {
	return s.Player == nil
}

// TeamSlots holds the five role slots of each team in canonical role order.
type TeamSlots struct {
	Light []SlotView `json:"light"`
	Dark  []SlotView `json:"dark"`
}

// ForTeam returns the slots of t.
func (ts TeamSlots) ForTeam(t Team) []SlotView {
	if t == TeamDark {
		return ts.Dark
	}
	return ts.Light
}

// RosterView is the externally visible state of a lobby: the lobby itself, the
// flat list of players and both teams laid out slot by slot.
type RosterView struct {
	Lobby
	Players []RosterEntry `json:"players"`
	Count   int           `json:"count"`
	Teams   TeamSlots     `json:"teams"`
}

// Filled returns how many slots are occupied.
func (v *RosterView) Filled() int {
	n := 0
	for _, t := range Teams {
		for _, s := range v.Teams.ForTeam(t) {
			if !s.Empty() {
				n++
			}
		}
	}
	return n
}
