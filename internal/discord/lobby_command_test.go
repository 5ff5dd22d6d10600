package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jason-s-yu/roster/internal/models"
	"github.com/jason-s-yu/roster/internal/roster"
	"github.com/jason-s-yu/roster/internal/roster/mocks"
)

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func newInvocation(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *invocation {
	return &invocation{
		GuildID:  "guild-1",
		UserID:   "u-1",
		UserName: "Alice",
		Sub: &discordgo.ApplicationCommandInteractionDataOption{
			Name:    sub,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: opts,
		},
	}
}

func newTestCommand(t *testing.T) (*LobbyCommand, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger, _ := test.NewNullLogger()
	return NewLobbyCommand(svc, logger), svc
}

var friday = models.Lobby{
	ID:        "lobby-1",
	GuildID:   "guild-1",
	Name:      "Friday Night",
	IsActive:  true,
	CreatedAt: time.Date(2024, 5, 3, 20, 0, 0, 0, time.UTC),
}

func TestCommandDefinition(t *testing.T) {
	cmd, _ := newTestCommand(t)
	def := cmd.GetCommand()
	assert.Equal(t, "lobby", def.Name)

	subs := map[string]*discordgo.ApplicationCommandOption{}
	for _, o := range def.Options {
		assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, o.Type)
		subs[o.Name] = o
	}
	assert.Len(t, subs, 7)
	for _, name := range []string{"create", "list", "show", "join", "leave", "kick", "close"} {
		assert.Contains(t, subs, name)
	}

	join := subs["join"]
	require.Len(t, join.Options, 3)
	assert.Len(t, join.Options[1].Choices, len(models.Teams))
	assert.Len(t, join.Options[2].Choices, len(models.Roles))
	assert.Equal(t, "hardsupport", join.Options[2].Choices[4].Value)
	assert.Equal(t, "Hard Support", join.Options[2].Choices[4].Name)
}

func TestJoinResolvesLobbyByName(t *testing.T) {
	cmd, svc := newTestCommand(t)
	ctx := context.Background()

	svc.EXPECT().ListLobbies(ctx, "guild-1").Return([]models.Lobby{friday}, nil)
	svc.EXPECT().Join(ctx, &roster.JoinInput{
		LobbyID:     "lobby-1",
		ExternalID:  "u-1",
		DisplayName: "Alice",
		Team:        "light",
		Role:        "mid",
	}).Return(&roster.JoinOutput{
		Assignment: models.Assignment{LobbyID: "lobby-1", Team: models.TeamLight, Role: models.RoleMid},
	}, nil)
	svc.EXPECT().BuildRosterView(ctx, "lobby-1").Return(roster.NewRosterView(&friday, []models.RosterEntry{
		{ExternalID: "u-1", DisplayName: "Alice", Team: models.TeamLight, Role: models.RoleMid},
	}), nil)

	resp := cmd.dispatch(ctx, newInvocation("join",
		stringOpt("lobby", "friday night"), stringOpt("team", "light"), stringOpt("role", "mid")))

	assert.Equal(t, "Alice joined Light as Mid.", resp.Content)
	require.Len(t, resp.Embeds, 1)
	assert.Equal(t, "Friday Night", resp.Embeds[0].Title)
	assert.Zero(t, resp.Flags)
}

func TestResolveLobbyPrefersActive(t *testing.T) {
	cmd, svc := newTestCommand(t)
	ctx := context.Background()

	old := friday
	old.ID, old.IsActive = "lobby-0", false
	newer := friday
	newer.ID = "lobby-2"
	closedLater := friday
	closedLater.ID, closedLater.IsActive = "lobby-3", false

	svc.EXPECT().ListLobbies(ctx, "guild-1").Return([]models.Lobby{old, newer, closedLater}, nil).Times(2)

	l, err := cmd.resolveLobby(ctx, newInvocation("show", stringOpt("lobby", "Friday Night")))
	require.NoError(t, err)
	assert.Equal(t, "lobby-2", l.ID)

	l, err = cmd.resolveLobby(ctx, newInvocation("show", stringOpt("lobby", "lobby-3")))
	require.NoError(t, err)
	assert.Equal(t, "lobby-3", l.ID)
}

func TestUnknownLobbyIsReported(t *testing.T) {
	cmd, svc := newTestCommand(t)
	ctx := context.Background()

	svc.EXPECT().ListLobbies(ctx, "guild-1").Return(nil, nil)

	resp := cmd.dispatch(ctx, newInvocation("leave", stringOpt("lobby", "nope")))
	require.Len(t, resp.Embeds, 1)
	assert.Equal(t, "Lobby not found", resp.Embeds[0].Description)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Flags)
}

func TestSlotTakenIsShownToUser(t *testing.T) {
	cmd, svc := newTestCommand(t)
	ctx := context.Background()

	svc.EXPECT().ListLobbies(ctx, "guild-1").Return([]models.Lobby{friday}, nil)
	svc.EXPECT().Join(ctx, gomock.Any()).Return(nil, roster.ErrSlotTaken)

	resp := cmd.dispatch(ctx, newInvocation("join",
		stringOpt("lobby", "lobby-1"), stringOpt("team", "dark"), stringOpt("role", "carry")))
	require.Len(t, resp.Embeds, 1)
	assert.Equal(t, "This role in the team is already taken", resp.Embeds[0].Description)
}

func TestKickReportsRemovedPlayer(t *testing.T) {
	cmd, svc := newTestCommand(t)
	ctx := context.Background()

	svc.EXPECT().ListLobbies(ctx, "guild-1").Return([]models.Lobby{friday}, nil)
	svc.EXPECT().Kick(ctx, &roster.KickInput{LobbyID: "lobby-1", Team: "dark", Role: "support"}).
		Return(&roster.KickOutput{ExternalID: "u-9", DisplayName: "Mallory"}, nil)
	svc.EXPECT().BuildRosterView(ctx, "lobby-1").Return(nil, errors.New("db gone"))

	resp := cmd.dispatch(ctx, newInvocation("kick",
		stringOpt("lobby", "lobby-1"), stringOpt("team", "dark"), stringOpt("role", "support")))
	assert.Equal(t, "Mallory was kicked by Alice.", resp.Content)
	assert.Empty(t, resp.Embeds)
}

func TestStorageFailureIsNotDescribed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger, hook := test.NewNullLogger()
	cmd := NewLobbyCommand(svc, logger)
	ctx := context.Background()

	svc.EXPECT().ListLobbies(ctx, "guild-1").Return(nil, errors.New("disk I/O error"))

	resp := cmd.dispatch(ctx, newInvocation("list"))
	require.Len(t, resp.Embeds, 1)
	assert.NotContains(t, resp.Embeds[0].Description, "disk")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "lobby command failed", hook.LastEntry().Message)
}

func TestCreateAndClose(t *testing.T) {
	cmd, svc := newTestCommand(t)
	ctx := context.Background()

	svc.EXPECT().CreateLobby(ctx, &roster.CreateLobbyInput{GuildID: "guild-1", Name: "Friday Night"}).Return(&friday, nil)
	svc.EXPECT().BuildRosterView(ctx, "lobby-1").Return(roster.NewRosterView(&friday, nil), nil)

	resp := cmd.dispatch(ctx, newInvocation("create", stringOpt("name", "  Friday Night ")))
	require.Len(t, resp.Embeds, 1)
	assert.Equal(t, "Open - 0/10 players", resp.Embeds[0].Description)

	closed := friday
	closed.IsActive = false
	svc.EXPECT().ListLobbies(ctx, "guild-1").Return([]models.Lobby{friday}, nil)
	svc.EXPECT().CloseLobby(ctx, "lobby-1").Return(nil)
	svc.EXPECT().BuildRosterView(ctx, "lobby-1").Return(roster.NewRosterView(&closed, nil), nil)

	resp = cmd.dispatch(ctx, newInvocation("close", stringOpt("lobby", "lobby-1")))
	assert.Equal(t, "Alice closed the lobby.", resp.Content)
	assert.Equal(t, colorClosed, resp.Embeds[0].Color)
}

func TestDispatchOutsideGuild(t *testing.T) {
	cmd, _ := newTestCommand(t)
	inv := newInvocation("list")
	inv.GuildID = ""

	resp := cmd.dispatch(context.Background(), inv)
	require.Len(t, resp.Embeds, 1)
	assert.Equal(t, "Error", resp.Embeds[0].Title)
}

func TestInvoker(t *testing.T) {
	tests := []struct {
		name     string
		i        *discordgo.InteractionCreate
		wantID   string
		wantName string
	}{
		{
			name: "nick wins",
			i: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
				Member: &discordgo.Member{Nick: "Ali", User: &discordgo.User{ID: "1", Username: "alice", GlobalName: "Alice"}},
			}},
			wantID: "1", wantName: "Ali",
		},
		{
			name: "global name",
			i: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
				Member: &discordgo.Member{User: &discordgo.User{ID: "1", Username: "alice", GlobalName: "Alice"}},
			}},
			wantID: "1", wantName: "Alice",
		},
		{
			name: "direct message",
			i: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
				User: &discordgo.User{ID: "2", Username: "bob"},
			}},
			wantID: "2", wantName: "bob",
		},
		{
			name: "nobody",
			i:    &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, name := invoker(tt.i)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestNewRequiresTokenAndService(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = New(&Config{Token: "t"})
	assert.ErrorIs(t, err, ErrMissingService)
}
