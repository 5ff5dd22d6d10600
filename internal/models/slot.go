// internal/models/slot.go
package models

import "fmt"

// Team is one of the two sides of a lobby.
type Team string

const (
	TeamLight Team = "light"
	TeamDark  Team = "dark"
)

// Role is one of the five positions on a team.
type Role string

const (
	RoleCarry       Role = "carry"
	RoleMid         Role = "mid"
	RoleOfflane     Role = "offlane"
	RoleSupport     Role = "support"
	RoleHardSupport Role = "hardsupport"
)

// Teams lists every team in display order.
var Teams = []Team{TeamLight, TeamDark}

// Roles lists every role in canonical display order.
var Roles = []Role{RoleCarry, RoleMid, RoleOfflane, RoleSupport, RoleHardSupport}

// SlotsPerLobby is the number of (team, role) slots in a lobby.
var SlotsPerLobby = len(Teams) * len(Roles)

// Valid reports whether t is a known team.
func (t Team) Valid() bool {
	return t == TeamLight || t == TeamDark
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseTeam converts a raw string into a Team.
func ParseTeam(s string) (Team, error) {
	t := Team(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid team %q", s)
	}
	return t, nil
}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

// Slot identifies a (team, role) position within a lobby.
type Slot struct {
	Team Team `json:"team"`
	Role Role `json:"role"`
}

func (s Slot) String() string {
	return string(s.Team) + "/" + string(s.Role)
}
