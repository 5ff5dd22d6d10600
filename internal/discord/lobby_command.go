package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/models"
	"github.com/jason-s-yu/roster/internal/roster"
)

// LobbyCommand handles the /lobby command
type LobbyCommand struct {
	BaseCommand
	service roster.Service
	log     *logrus.Logger
}

// invocation is everything a subcommand needs from an interaction.
type invocation struct {
	GuildID  string
	UserID   string
	UserName string
	Sub      *discordgo.ApplicationCommandInteractionDataOption
}

// option returns the string value of a named subcommand option, or "".
func (inv *invocation) option(name string) string {
	if inv.Sub == nil {
		return ""
	}
	for _, opt := range inv.Sub.Options {
		if opt.Name == name {
			return strings.TrimSpace(opt.StringValue())
		}
	}
	return ""
}

func teamChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Teams))
	for _, t := range models.Teams {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: teamLabel(t), Value: string(t)})
	}
	return choices
}

func roleChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Roles))
	for _, r := range models.Roles {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: roleLabel(r), Value: string(r)})
	}
	return choices
}

func lobbyOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "lobby",
		Description: "Lobby name or id",
		Required:    true,
	}
}

func slotOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		lobbyOption(),
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "team",
			Description: "Team",
			Required:    true,
			Choices:     teamChoices(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "role",
			Description: "Role",
			Required:    true,
			Choices:     roleChoices(),
		},
	}
}

// NewLobbyCommand creates a new lobby command handler
func NewLobbyCommand(service roster.Service, log *logrus.Logger) *LobbyCommand {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LobbyCommand{
		BaseCommand: BaseCommand{
			Name:        "lobby",
			Description: "Pick a team and role in a 5v5 lobby",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new lobby",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Lobby name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List the lobbies of this server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show who plays what",
					Options:     []*discordgo.ApplicationCommandOption{lobbyOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Take a team and role",
					Options:     slotOptions(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Give up your slot",
					Options:     []*discordgo.ApplicationCommandOption{lobbyOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "kick",
					Description: "Free a slot, whoever holds it",
					Options:     slotOptions(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "close",
					Description: "Lock the lobby roster",
					Options:     []*discordgo.ApplicationCommandOption{lobbyOption()},
				},
			},
		},
		service: service,
		log:     log,
	}
}

// Handle processes a Discord interaction for the lobby command
func (c *LobbyCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	inv := &invocation{GuildID: i.GuildID, Sub: data.Options[0]}
	inv.UserID, inv.UserName = invoker(i)

	return Respond(s, i, c.dispatch(ctx, inv))
}

// invoker returns the id and display name of whoever ran the command.
func invoker(i *discordgo.InteractionCreate) (string, string) {
	var user *discordgo.User
	nick := ""
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
		nick = i.Member.Nick
	case i.User != nil:
		user = i.User
	default:
		return "", ""
	}
	switch {
	case nick != "":
		return user.ID, nick
	case user.GlobalName != "":
		return user.ID, user.GlobalName
	default:
		return user.ID, user.Username
	}
}

func (c *LobbyCommand) dispatch(ctx context.Context, inv *invocation) *discordgo.InteractionResponseData {
	if inv.GuildID == "" {
		return errorResponse("Lobbies only exist inside a server.")
	}

	var (
		resp *discordgo.InteractionResponseData
		err  error
	)
	switch inv.Sub.Name {
	case "create":
		resp, err = c.handleCreate(ctx, inv)
	case "list":
		resp, err = c.handleList(ctx, inv)
	case "show":
		resp, err = c.handleShow(ctx, inv)
	case "join":
		resp, err = c.handleJoin(ctx, inv)
	case "leave":
		resp, err = c.handleLeave(ctx, inv)
	case "kick":
		resp, err = c.handleKick(ctx, inv)
	case "close":
		resp, err = c.handleClose(ctx, inv)
	default:
		return errorResponse("Unknown subcommand.")
	}
	if err != nil {
		if roster.Kind(err) == roster.KindStorage {
			c.log.WithError(err).WithFields(logrus.Fields{
				"subcommand": inv.Sub.Name,
				"guild":      inv.GuildID,
			}).Error("lobby command failed")
		}
		return errorResponse(errorMessage(err))
	}
	return resp
}

// resolveLobby finds a lobby of the guild by id, or by case-insensitive name.
// When several lobbies share a name the most recent active one wins.
func (c *LobbyCommand) resolveLobby(ctx context.Context, inv *invocation) (*models.Lobby, error) {
	ref := inv.option("lobby")
	if ref == "" {
		return nil, fmt.Errorf("%w: lobby is required", roster.ErrInvalidInput)
	}

	lobbies, err := c.service.ListLobbies(ctx, inv.GuildID)
	if err != nil {
		return nil, err
	}

	var match *models.Lobby
	for idx := range lobbies {
		l := &lobbies[idx]
		if l.ID == ref {
			return l, nil
		}
		if !strings.EqualFold(l.Name, ref) {
			continue
		}
		if match == nil || l.IsActive || !match.IsActive {
			match = l
		}
	}
	if match == nil {
		return nil, roster.ErrLobbyNotFound
	}
	return match, nil
}

func (c *LobbyCommand) handleCreate(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobby, err := c.service.CreateLobby(ctx, &roster.CreateLobbyInput{
		GuildID: inv.GuildID,
		Name:    inv.option("name"),
	})
	if err != nil {
		return nil, err
	}
	view, err := c.service.BuildRosterView(ctx, lobby.ID)
	if err != nil {
		return nil, err
	}
	return embedResponse(renderRoster(view)), nil
}

func (c *LobbyCommand) handleList(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobbies, err := c.service.ListLobbies(ctx, inv.GuildID)
	if err != nil {
		return nil, err
	}
	return embedResponse(renderLobbyList(lobbies)), nil
}

func (c *LobbyCommand) handleShow(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobby, err := c.resolveLobby(ctx, inv)
	if err != nil {
		return nil, err
	}
	view, err := c.service.BuildRosterView(ctx, lobby.ID)
	if err != nil {
		return nil, err
	}
	return embedResponse(renderRoster(view)), nil
}

func (c *LobbyCommand) handleJoin(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobby, err := c.resolveLobby(ctx, inv)
	if err != nil {
		return nil, err
	}
	out, err := c.service.Join(ctx, &roster.JoinInput{
		LobbyID:     lobby.ID,
		ExternalID:  inv.UserID,
		DisplayName: inv.UserName,
		Team:        inv.option("team"),
		Role:        inv.option("role"),
	})
	if err != nil {
		return nil, err
	}
	return c.rosterUpdate(ctx, lobby.ID, fmt.Sprintf("%s joined %s as %s.",
		inv.UserName, teamLabel(out.Assignment.Team), roleLabel(out.Assignment.Role)))
}

func (c *LobbyCommand) handleLeave(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobby, err := c.resolveLobby(ctx, inv)
	if err != nil {
		return nil, err
	}
	out, err := c.service.Leave(ctx, &roster.LeaveInput{LobbyID: lobby.ID, ExternalID: inv.UserID})
	if err != nil {
		return nil, err
	}
	return c.rosterUpdate(ctx, lobby.ID, fmt.Sprintf("%s left %s %s.",
		inv.UserName, teamLabel(out.Slot.Team), roleLabel(out.Slot.Role)))
}

func (c *LobbyCommand) handleKick(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobby, err := c.resolveLobby(ctx, inv)
	if err != nil {
		return nil, err
	}
	out, err := c.service.Kick(ctx, &roster.KickInput{
		LobbyID: lobby.ID,
		Team:    inv.option("team"),
		Role:    inv.option("role"),
	})
	if err != nil {
		return nil, err
	}
	return c.rosterUpdate(ctx, lobby.ID, fmt.Sprintf("%s was kicked by %s.", out.DisplayName, inv.UserName))
}

func (c *LobbyCommand) handleClose(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	lobby, err := c.resolveLobby(ctx, inv)
	if err != nil {
		return nil, err
	}
	if err := c.service.CloseLobby(ctx, lobby.ID); err != nil {
		return nil, err
	}
	return c.rosterUpdate(ctx, lobby.ID, fmt.Sprintf("%s closed the lobby.", inv.UserName))
}

// rosterUpdate answers a successful change with the message and the fresh
// roster. A failed re-read still reports the change.
func (c *LobbyCommand) rosterUpdate(ctx context.Context, lobbyID, message string) (*discordgo.InteractionResponseData, error) {
	view, err := c.service.BuildRosterView(ctx, lobbyID)
	if err != nil {
		c.log.WithError(err).WithField("lobby", lobbyID).Warn("failed to reload roster")
		return messageResponse(message), nil
	}
	resp := embedResponse(renderRoster(view))
	resp.Content = message
	return resp, nil
}
