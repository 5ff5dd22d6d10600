package roster

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/common/clock"
	"github.com/jason-s-yu/roster/internal/common/uuid"
	"github.com/jason-s-yu/roster/internal/database"
	"github.com/jason-s-yu/roster/internal/models"
)

// Engine is the Service backed by a database.Store.
type Engine struct {
	store     database.Store
	publisher Publisher
	clock     clock.Clock
	ids       uuid.UUID
	log       *logrus.Logger
}

var _ Service = (*Engine)(nil)

// New creates an Engine. Clock, UUIDGenerator and Logger fall back to defaults.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	e := &Engine{
		store:     cfg.Store,
		publisher: cfg.Publisher,
		clock:     cfg.Clock,
		ids:       cfg.UUIDGenerator,
		log:       cfg.Logger,
	}
	if e.clock == nil {
		e.clock = &clock.DefaultClock{}
	}
	if e.ids == nil {
		e.ids = uuid.New()
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	return e, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func parseSlot(team, role string) (models.Slot, error) {
	t, err := models.ParseTeam(team)
	if err != nil {
		return models.Slot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return models.Slot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return models.Slot{Team: t, Role: r}, nil
}

// activeLobby loads the lobby inside a transaction and rejects closed ones.
func activeLobby(ctx context.Context, q database.Queries, lobbyID string) (*models.Lobby, error) {
	lobby, err := q.GetLobby(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	if lobby.Closed() {
		return nil, ErrLobbyClosed
	}
	return lobby, nil
}

// fail passes named outcomes through and logs and wraps everything else.
func (e *Engine) fail(op string, err error, fields logrus.Fields) error {
	if isOutcome(err) {
		e.log.WithFields(fields).WithField("reason", err.Error()).Debugf("%s rejected", op)
		return err
	}
	e.log.WithFields(fields).WithError(err).Errorf("%s failed", op)
	return fmt.Errorf("%s: %w", op, err)
}

// publish is best effort: the change is already committed.
func (e *Engine) publish(ctx context.Context, ev models.RosterEvent) {
	if e.publisher == nil {
		return
	}
	ev.ID = e.ids.NewUUID()
	ev.OccurredAt = e.clock.Now().UTC()
	if err := e.publisher.PublishRosterEvent(ctx, ev); err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"lobby_id": ev.LobbyID,
			"event":    ev.Type,
		}).Warn("failed to publish roster event")
	}
}

func (e *Engine) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, invalid("join input is required")
	}
	if input.LobbyID == "" {
		return nil, invalid("lobby id is required")
	}
	if input.ExternalID == "" {
		return nil, invalid("discord id is required")
	}
	slot, err := parseSlot(input.Team, input.Role)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{"lobby_id": input.LobbyID, "external_id": input.ExternalID, "slot": slot.String()}

	var out JoinOutput
	var guildID string
	err = e.store.InTx(ctx, func(q database.Queries) error {
		lobby, err := activeLobby(ctx, q, input.LobbyID)
		if err != nil {
			return err
		}
		guildID = lobby.GuildID

		player, err := q.FindOrCreatePlayer(ctx, input.ExternalID, input.DisplayName)
		if err != nil {
			return err
		}

		a := &models.Assignment{
			LobbyID:  lobby.ID,
			PlayerID: player.ID,
			Team:     slot.Team,
			Role:     slot.Role,
			JoinedAt: e.clock.Now().UTC(),
		}
		if err := q.InsertAssignment(ctx, a); err != nil {
			return err
		}
		out = JoinOutput{Assignment: *a, Player: *player}
		return nil
	})
	if err != nil {
		return nil, e.fail("join lobby", err, fields)
	}

	e.log.WithFields(fields).Debug("player joined lobby")
	e.publish(ctx, models.RosterEvent{
		LobbyID:    input.LobbyID,
		GuildID:    guildID,
		Type:       models.EventPlayerJoined,
		ExternalID: input.ExternalID,
		Team:       slot.Team,
		Role:       slot.Role,
	})
	return &out, nil
}

func (e *Engine) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil {
		return nil, invalid("leave input is required")
	}
	if input.LobbyID == "" {
		return nil, invalid("lobby id is required")
	}
	if input.ExternalID == "" {
		return nil, invalid("discord id is required")
	}

	fields := logrus.Fields{"lobby_id": input.LobbyID, "external_id": input.ExternalID}

	var out LeaveOutput
	var guildID string
	err := e.store.InTx(ctx, func(q database.Queries) error {
		lobby, err := activeLobby(ctx, q, input.LobbyID)
		if err != nil {
			return err
		}
		guildID = lobby.GuildID

		entries, err := q.GetRoster(ctx, lobby.ID)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.ExternalID == input.ExternalID {
				out.Slot = models.Slot{Team: entry.Team, Role: entry.Role}
				break
			}
		}
		return q.RemoveAssignmentByPlayer(ctx, lobby.ID, input.ExternalID)
	})
	if err != nil {
		return nil, e.fail("leave lobby", err, fields)
	}

	e.log.WithFields(fields).Debug("player left lobby")
	e.publish(ctx, models.RosterEvent{
		LobbyID:    input.LobbyID,
		GuildID:    guildID,
		Type:       models.EventPlayerLeft,
		ExternalID: input.ExternalID,
		Team:       out.Slot.Team,
		Role:       out.Slot.Role,
	})
	return &out, nil
}

func (e *Engine) Kick(ctx context.Context, input *KickInput) (*KickOutput, error) {
	if input == nil {
		return nil, invalid("kick input is required")
	}
	if input.LobbyID == "" {
		return nil, invalid("lobby id is required")
	}
	slot, err := parseSlot(input.Team, input.Role)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{"lobby_id": input.LobbyID, "slot": slot.String()}

	var out KickOutput
	var guildID string
	err = e.store.InTx(ctx, func(q database.Queries) error {
		lobby, err := activeLobby(ctx, q, input.LobbyID)
		if err != nil {
			return err
		}
		guildID = lobby.GuildID

		entries, err := q.GetRoster(ctx, lobby.ID)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.Team == slot.Team && entry.Role == slot.Role {
				out = KickOutput{ExternalID: entry.ExternalID, DisplayName: entry.DisplayName}
				break
			}
		}
		return q.RemoveAssignmentBySlot(ctx, lobby.ID, slot.Team, slot.Role)
	})
	if err != nil {
		return nil, e.fail("kick player", err, fields)
	}

	e.log.WithFields(fields).WithField("external_id", out.ExternalID).Debug("player kicked from lobby")
	e.publish(ctx, models.RosterEvent{
		LobbyID:    input.LobbyID,
		GuildID:    guildID,
		Type:       models.EventPlayerKicked,
		ExternalID: out.ExternalID,
		Team:       slot.Team,
		Role:       slot.Role,
	})
	return &out, nil
}

func (e *Engine) BuildRosterView(ctx context.Context, lobbyID string) (*models.RosterView, error) {
	if lobbyID == "" {
		return nil, invalid("lobby id is required")
	}
	fields := logrus.Fields{"lobby_id": lobbyID}

	lobby, err := e.store.GetLobby(ctx, lobbyID)
	if err != nil {
		return nil, e.fail("get lobby", err, fields)
	}
	entries, err := e.store.GetRoster(ctx, lobbyID)
	if err != nil {
		return nil, e.fail("get roster", err, fields)
	}
	return NewRosterView(lobby, entries), nil
}

// NewRosterView lays entries out over both teams. Every team gets all five
// roles in canonical order; unoccupied slots have a nil Player.
func NewRosterView(lobby *models.Lobby, entries []models.RosterEntry) *models.RosterView {
	occupant := make(map[models.Slot]*models.SlotPlayer, len(entries))
	for _, entry := range entries {
		occupant[models.Slot{Team: entry.Team, Role: entry.Role}] = &models.SlotPlayer{
			ExternalID:  entry.ExternalID,
			DisplayName: entry.DisplayName,
		}
	}

	layout := func(t models.Team) []models.SlotView {
		slots := make([]models.SlotView, 0, len(models.Roles))
		for _, r := range models.Roles {
			slots = append(slots, models.SlotView{Role: r, Player: occupant[models.Slot{Team: t, Role: r}]})
		}
		return slots
	}

	if entries == nil {
		entries = []models.RosterEntry{}
	}
	return &models.RosterView{
		Lobby:   *lobby,
		Players: entries,
		Count:   len(entries),
		Teams: models.TeamSlots{
			Light: layout(models.TeamLight),
			Dark:  layout(models.TeamDark),
		},
	}
}

func (e *Engine) CreateLobby(ctx context.Context, input *CreateLobbyInput) (*models.Lobby, error) {
	if input == nil {
		return nil, invalid("lobby input is required")
	}
	if input.GuildID == "" {
		return nil, invalid("guild id is required")
	}
	if input.Name == "" {
		return nil, invalid("lobby name is required")
	}
	fields := logrus.Fields{"guild_id": input.GuildID, "name": input.Name}

	lobby, err := e.store.CreateLobby(ctx, input.GuildID, input.Name)
	if err != nil {
		return nil, e.fail("create lobby", err, fields)
	}

	e.log.WithFields(fields).WithField("lobby_id", lobby.ID).Info("lobby created")
	e.publish(ctx, models.RosterEvent{LobbyID: lobby.ID, GuildID: lobby.GuildID, Type: models.EventLobbyCreated})
	return lobby, nil
}

func (e *Engine) GetLobby(ctx context.Context, lobbyID string) (*models.Lobby, error) {
	if lobbyID == "" {
		return nil, invalid("lobby id is required")
	}
	lobby, err := e.store.GetLobby(ctx, lobbyID)
	if err != nil {
		return nil, e.fail("get lobby", err, logrus.Fields{"lobby_id": lobbyID})
	}
	return lobby, nil
}

func (e *Engine) ListLobbies(ctx context.Context, guildID string) ([]models.Lobby, error) {
	if guildID == "" {
		return nil, invalid("guild id is required")
	}
	lobbies, err := e.store.ListLobbies(ctx, guildID)
	if err != nil {
		return nil, e.fail("list lobbies", err, logrus.Fields{"guild_id": guildID})
	}
	return lobbies, nil
}

func (e *Engine) CloseLobby(ctx context.Context, lobbyID string) error {
	if lobbyID == "" {
		return invalid("lobby id is required")
	}
	fields := logrus.Fields{"lobby_id": lobbyID}

	var guildID string
	err := e.store.InTx(ctx, func(q database.Queries) error {
		lobby, err := q.GetLobby(ctx, lobbyID)
		if err != nil {
			return err
		}
		guildID = lobby.GuildID
		return q.CloseLobby(ctx, lobbyID)
	})
	if err != nil {
		return e.fail("close lobby", err, fields)
	}

	e.log.WithFields(fields).Info("lobby closed")
	e.publish(ctx, models.RosterEvent{LobbyID: lobbyID, GuildID: guildID, Type: models.EventLobbyClosed})
	return nil
}

func (e *Engine) DeleteLobby(ctx context.Context, lobbyID string) error {
	if lobbyID == "" {
		return invalid("lobby id is required")
	}
	fields := logrus.Fields{"lobby_id": lobbyID}

	var guildID string
	err := e.store.InTx(ctx, func(q database.Queries) error {
		lobby, err := q.GetLobby(ctx, lobbyID)
		if err != nil {
			return err
		}
		guildID = lobby.GuildID
		return q.DeleteLobby(ctx, lobbyID)
	})
	if err != nil {
		return e.fail("delete lobby", err, fields)
	}

	e.log.WithFields(fields).Info("lobby deleted")
	e.publish(ctx, models.RosterEvent{LobbyID: lobbyID, GuildID: guildID, Type: models.EventLobbyDeleted})
	return nil
}

func (e *Engine) CountPlayers(ctx context.Context, lobbyID string) (int, error) {
	if lobbyID == "" {
		return 0, invalid("lobby id is required")
	}
	fields := logrus.Fields{"lobby_id": lobbyID}

	if _, err := e.store.GetLobby(ctx, lobbyID); err != nil {
		return 0, e.fail("count players", err, fields)
	}
	n, err := e.store.CountAssignments(ctx, lobbyID)
	if err != nil {
		return 0, e.fail("count players", err, fields)
	}
	return n, nil
}

func (e *Engine) LobbyHistory(ctx context.Context, lobbyID string, limit int) ([]models.RosterEvent, error) {
	if lobbyID == "" {
		return nil, invalid("lobby id is required")
	}
	if limit < 0 {
		return nil, invalid("limit must not be negative")
	}
	events, err := e.store.ListEvents(ctx, lobbyID, limit)
	if err != nil {
		return nil, e.fail("lobby history", err, logrus.Fields{"lobby_id": lobbyID})
	}
	return events, nil
}
