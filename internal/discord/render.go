package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jason-s-yu/roster/internal/models"
	"github.com/jason-s-yu/roster/internal/roster"
)

func teamLabel(t models.Team) string {
	switch t {
	case models.TeamLight:
		return "Light"
	case models.TeamDark:
		return "Dark"
	default:
		return string(t)
	}
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleCarry:
		return "Carry"
	case models.RoleMid:
		return "Mid"
	case models.RoleOfflane:
		return "Offlane"
	case models.RoleSupport:
		return "Support"
	case models.RoleHardSupport:
		return "Hard Support"
	default:
		return string(r)
	}
}

// renderRoster lays out both teams as inline embed fields, one line per role.
func renderRoster(view *models.RosterView) *discordgo.MessageEmbed {
	status := "Open"
	color := colorActive
	if view.Closed() {
		status = "Closed"
		color = colorClosed
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(models.Teams))
	for _, t := range models.Teams {
		var sb strings.Builder
		for _, slot := range view.Teams.ForTeam(t) {
			occupant := "_open_"
			if !slot.Empty() {
				occupant = slot.Player.DisplayName
			}
			fmt.Fprintf(&sb, "**%s**: %s\n", roleLabel(slot.Role), occupant)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   teamLabel(t),
			Value:  strings.TrimSuffix(sb.String(), "\n"),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       view.Name,
		Description: fmt.Sprintf("%s - %d/%d players", status, view.Count, models.SlotsPerLobby),
		Color:       color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: view.ID},
	}
}

func renderLobbyList(lobbies []models.Lobby) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: "Lobbies", Color: colorActive}
	if len(lobbies) == 0 {
		embed.Description = "No lobbies yet. Start one with `/lobby create`."
		return embed
	}

	var sb strings.Builder
	for _, l := range lobbies {
		state := "open"
		if l.Closed() {
			state = "closed"
		}
		fmt.Fprintf(&sb, "**%s** (%s) `%s`\n", l.Name, state, l.ID)
	}
	embed.Description = strings.TrimSuffix(sb.String(), "\n")
	return embed
}

// errorMessage is the text shown to the user for a failed command. Storage
// failures are not described.
func errorMessage(err error) string {
	if roster.Kind(err) == roster.KindStorage {
		return "Something went wrong, try again in a moment."
	}
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
