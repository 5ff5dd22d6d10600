// internal/database/sqlite.go
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/jason-s-yu/roster/internal/models"
)

// SQLiteConfig configures the embedded roster store.
type SQLiteConfig struct {
	Config

	// Path is the database file. Its parent directory must exist.
	Path string

	// PoolSize defaults to max(NumCPU, 4). Writes are serialized by SQLite
	// regardless; extra connections serve concurrent reads.
	PoolSize int
}

// SQLiteStore is the embedded Store backend.
type SQLiteStore struct {
	pool *sqlitePool
	deps deps
}

// OpenSQLite opens (creating if needed) the database at cfg.Path and applies
// the schema.
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteStore, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	d := newDeps(cfg.Config)

	pool, err := openSQLitePool(cfg.Path, cfg.PoolSize, d.log)
	if err != nil {
		return nil, err
	}

	conn, err := pool.take(ctx)
	if err != nil {
		pool.close()
		return nil, err
	}
	err = sqlitex.ExecuteScript(conn, sqliteSchema, nil)
	pool.put(conn)
	if err != nil {
		pool.close()
		return nil, fmt.Errorf("sqlite: applying schema: %w", err)
	}

	return &SQLiteStore{pool: pool, deps: d}, nil
}

// InTx runs fn inside an IMMEDIATE transaction so the write lock is held from
// the first statement and concurrent writers queue on busy_timeout.
func (s *SQLiteStore) InTx(ctx context.Context, fn func(q Queries) error) (err error) {
	conn, err := s.pool.take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.put(conn)

	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	return fn(&sqliteQueries{conn: conn, deps: &s.deps})
}

// read runs fn on a pooled connection without a transaction.
func (s *SQLiteStore) read(ctx context.Context, fn func(q *sqliteQueries) error) error {
	conn, err := s.pool.take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.put(conn)
	return fn(&sqliteQueries{conn: conn, deps: &s.deps})
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.read(ctx, func(q *sqliteQueries) error {
		return sqlitex.ExecuteTransient(q.conn, "SELECT 1", nil)
	})
}

func (s *SQLiteStore) Close() error {
	return s.pool.close()
}

func (s *SQLiteStore) CreateLobby(ctx context.Context, guildID, name string) (lobby *models.Lobby, err error) {
	err = s.InTx(ctx, func(q Queries) error {
		lobby, err = q.CreateLobby(ctx, guildID, name)
		return err
	})
	return lobby, err
}

func (s *SQLiteStore) GetLobby(ctx context.Context, lobbyID string) (lobby *models.Lobby, err error) {
	err = s.read(ctx, func(q *sqliteQueries) error {
		lobby, err = q.GetLobby(ctx, lobbyID)
		return err
	})
	return lobby, err
}

func (s *SQLiteStore) ListLobbies(ctx context.Context, guildID string) (lobbies []models.Lobby, err error) {
	err = s.read(ctx, func(q *sqliteQueries) error {
		lobbies, err = q.ListLobbies(ctx, guildID)
		return err
	})
	return lobbies, err
}

func (s *SQLiteStore) CloseLobby(ctx context.Context, lobbyID string) error {
	return s.InTx(ctx, func(q Queries) error {
		return q.CloseLobby(ctx, lobbyID)
	})
}

func (s *SQLiteStore) DeleteLobby(ctx context.Context, lobbyID string) error {
	return s.InTx(ctx, func(q Queries) error {
		return q.DeleteLobby(ctx, lobbyID)
	})
}

func (s *SQLiteStore) FindOrCreatePlayer(ctx context.Context, externalID, displayName string) (player *models.Player, err error) {
	err = s.InTx(ctx, func(q Queries) error {
		player, err = q.FindOrCreatePlayer(ctx, externalID, displayName)
		return err
	})
	return player, err
}

func (s *SQLiteStore) InsertAssignment(ctx context.Context, a *models.Assignment) error {
	return s.InTx(ctx, func(q Queries) error {
		return q.InsertAssignment(ctx, a)
	})
}

func (s *SQLiteStore) RemoveAssignmentByPlayer(ctx context.Context, lobbyID, externalID string) error {
	return s.InTx(ctx, func(q Queries) error {
		return q.RemoveAssignmentByPlayer(ctx, lobbyID, externalID)
	})
}

func (s *SQLiteStore) RemoveAssignmentBySlot(ctx context.Context, lobbyID string, team models.Team, role models.Role) error {
	return s.InTx(ctx, func(q Queries) error {
		return q.RemoveAssignmentBySlot(ctx, lobbyID, team, role)
	})
}

func (s *SQLiteStore) CountAssignments(ctx context.Context, lobbyID string) (n int, err error) {
	err = s.read(ctx, func(q *sqliteQueries) error {
		n, err = q.CountAssignments(ctx, lobbyID)
		return err
	})
	return n, err
}

func (s *SQLiteStore) GetRoster(ctx context.Context, lobbyID string) (entries []models.RosterEntry, err error) {
	err = s.read(ctx, func(q *sqliteQueries) error {
		entries, err = q.GetRoster(ctx, lobbyID)
		return err
	})
	return entries, err
}

func (s *SQLiteStore) InsertEvents(ctx context.Context, events []models.RosterEvent) error {
	if len(events) == 0 {
		return nil
	}
	return s.InTx(ctx, func(q Queries) error {
		return q.InsertEvents(ctx, events)
	})
}

func (s *SQLiteStore) ListEvents(ctx context.Context, lobbyID string, limit int) (events []models.RosterEvent, err error) {
	err = s.read(ctx, func(q *sqliteQueries) error {
		events, err = q.ListEvents(ctx, lobbyID, limit)
		return err
	})
	return events, err
}

// sqliteQueries runs statements on a single connection, inside whatever
// transaction the connection currently has open.
type sqliteQueries struct {
	conn *sqlite.Conn
	deps *deps
}

// sqliteTimeLayout is fixed width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

func (q *sqliteQueries) CreateLobby(ctx context.Context, guildID, name string) (*models.Lobby, error) {
	if guildID == "" || name == "" {
		return nil, ErrInvalidInput
	}
	lobby := &models.Lobby{
		ID:        q.deps.ids.NewUUID(),
		GuildID:   guildID,
		Name:      name,
		IsActive:  true,
		CreatedAt: q.deps.clock.Now().UTC(),
	}
	err := sqlitex.Execute(q.conn,
		`INSERT INTO lobbies (id, guild_id, name, is_active, created_at) VALUES (?, ?, ?, 1, ?)`,
		&sqlitex.ExecOptions{Args: []any{lobby.ID, lobby.GuildID, lobby.Name, formatTime(lobby.CreatedAt)}},
	)
	if err != nil {
		return nil, fmt.Errorf("insert lobby: %w", err)
	}
	return lobby, nil
}

func scanSQLiteLobby(stmt *sqlite.Stmt) (models.Lobby, error) {
	createdAt, err := parseTime(stmt.ColumnText(4))
	if err != nil {
		return models.Lobby{}, err
	}
	return models.Lobby{
		ID:        stmt.ColumnText(0),
		GuildID:   stmt.ColumnText(1),
		Name:      stmt.ColumnText(2),
		IsActive:  stmt.ColumnInt64(3) != 0,
		CreatedAt: createdAt,
	}, nil
}

func (q *sqliteQueries) GetLobby(ctx context.Context, lobbyID string) (*models.Lobby, error) {
	var found *models.Lobby
	err := sqlitex.Execute(q.conn,
		`SELECT id, guild_id, name, is_active, created_at FROM lobbies WHERE id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{lobbyID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				l, err := scanSQLiteLobby(stmt)
				if err != nil {
					return err
				}
				found = &l
				return nil
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("get lobby: %w", err)
	}
	if found == nil {
		return nil, ErrLobbyNotFound
	}
	return found, nil
}

func (q *sqliteQueries) ListLobbies(ctx context.Context, guildID string) ([]models.Lobby, error) {
	lobbies := []models.Lobby{}
	err := sqlitex.Execute(q.conn,
		`SELECT id, guild_id, name, is_active, created_at FROM lobbies WHERE guild_id = ? ORDER BY rowid`,
		&sqlitex.ExecOptions{
			Args: []any{guildID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				l, err := scanSQLiteLobby(stmt)
				if err != nil {
					return err
				}
				lobbies = append(lobbies, l)
				return nil
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list lobbies: %w", err)
	}
	return lobbies, nil
}

func (q *sqliteQueries) CloseLobby(ctx context.Context, lobbyID string) error {
	err := sqlitex.Execute(q.conn, `UPDATE lobbies SET is_active = 0 WHERE id = ?`,
		&sqlitex.ExecOptions{Args: []any{lobbyID}})
	if err != nil {
		return fmt.Errorf("close lobby: %w", err)
	}
	// changes counts matched rows, so an already closed lobby still reports 1
	if q.conn.Changes() == 0 {
		return ErrLobbyNotFound
	}
	return nil
}

func (q *sqliteQueries) DeleteLobby(ctx context.Context, lobbyID string) error {
	err := sqlitex.Execute(q.conn, `DELETE FROM lobbies WHERE id = ?`,
		&sqlitex.ExecOptions{Args: []any{lobbyID}})
	if err != nil {
		return fmt.Errorf("delete lobby: %w", err)
	}
	if q.conn.Changes() == 0 {
		return ErrLobbyNotFound
	}
	return nil
}

func (q *sqliteQueries) FindOrCreatePlayer(ctx context.Context, externalID, displayName string) (*models.Player, error) {
	if externalID == "" {
		return nil, ErrInvalidInput
	}
	var player *models.Player
	err := sqlitex.Execute(q.conn, `
		INSERT INTO players (id, discord_id, discord_name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (discord_id) DO UPDATE SET
			discord_name = CASE WHEN excluded.discord_name <> '' THEN excluded.discord_name ELSE players.discord_name END
		RETURNING id, discord_id, discord_name, created_at`,
		&sqlitex.ExecOptions{
			Args: []any{q.deps.ids.NewUUID(), externalID, displayName, formatTime(q.deps.clock.Now())},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				createdAt, err := parseTime(stmt.ColumnText(3))
				if err != nil {
					return err
				}
				player = &models.Player{
					ID:          stmt.ColumnText(0),
					ExternalID:  stmt.ColumnText(1),
					DisplayName: stmt.ColumnText(2),
					CreatedAt:   createdAt,
				}
				return nil
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("upsert player: %w", err)
	}
	return player, nil
}

func (q *sqliteQueries) InsertAssignment(ctx context.Context, a *models.Assignment) error {
	if a.JoinedAt.IsZero() {
		a.JoinedAt = q.deps.clock.Now().UTC()
	}
	err := sqlitex.Execute(q.conn,
		`INSERT INTO lobby_players (lobby_id, player_id, team, role, joined_at) VALUES (?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{a.LobbyID, a.PlayerID, string(a.Team), string(a.Role), formatTime(a.JoinedAt)}},
	)
	if err != nil {
		if classified := classifySQLiteConstraint(err); classified != nil {
			return classified
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// classifySQLiteConstraint maps a constraint failure on lobby_players to the
// matching StoreError, or returns nil for any other error.
func classifySQLiteConstraint(err error) error {
	switch sqlite.ErrCode(err) {
	case sqlite.ResultConstraintUnique:
		return ErrSlotTaken
	case sqlite.ResultConstraintPrimaryKey:
		return ErrAlreadyInLobby
	case sqlite.ResultConstraintForeignKey:
		return ErrLobbyNotFound
	}

	// fall back to the message when only the primary result code is reported
	msg := err.Error()
	switch {
	case strings.Contains(msg, "lobby_players.team"):
		return ErrSlotTaken
	case strings.Contains(msg, "lobby_players.player_id"):
		return ErrAlreadyInLobby
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrLobbyNotFound
	}
	return nil
}

func (q *sqliteQueries) RemoveAssignmentByPlayer(ctx context.Context, lobbyID, externalID string) error {
	err := sqlitex.Execute(q.conn, `
		DELETE FROM lobby_players
		WHERE lobby_id = ? AND player_id = (
			SELECT id FROM players WHERE discord_id = ?
		)`,
		&sqlitex.ExecOptions{Args: []any{lobbyID, externalID}},
	)
	if err != nil {
		return fmt.Errorf("remove assignment by player: %w", err)
	}
	if q.conn.Changes() == 0 {
		return ErrNotInLobby
	}
	return nil
}

func (q *sqliteQueries) RemoveAssignmentBySlot(ctx context.Context, lobbyID string, team models.Team, role models.Role) error {
	err := sqlitex.Execute(q.conn,
		`DELETE FROM lobby_players WHERE lobby_id = ? AND team = ? AND role = ?`,
		&sqlitex.ExecOptions{Args: []any{lobbyID, string(team), string(role)}},
	)
	if err != nil {
		return fmt.Errorf("remove assignment by slot: %w", err)
	}
	if q.conn.Changes() == 0 {
		return ErrSlotEmpty
	}
	return nil
}

func (q *sqliteQueries) CountAssignments(ctx context.Context, lobbyID string) (int, error) {
	var count int
	err := sqlitex.Execute(q.conn, `SELECT COUNT(*) FROM lobby_players WHERE lobby_id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{lobbyID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt(0)
				return nil
			},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return count, nil
}

func (q *sqliteQueries) GetRoster(ctx context.Context, lobbyID string) ([]models.RosterEntry, error) {
	entries := []models.RosterEntry{}
	err := sqlitex.Execute(q.conn, `
		SELECT p.discord_id, p.discord_name, lp.team, lp.role, lp.joined_at
		FROM lobby_players lp
		JOIN players p ON lp.player_id = p.id
		WHERE lp.lobby_id = ?
		ORDER BY lp.rowid`,
		&sqlitex.ExecOptions{
			Args: []any{lobbyID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				joinedAt, err := parseTime(stmt.ColumnText(4))
				if err != nil {
					return err
				}
				entries = append(entries, models.RosterEntry{
					ExternalID:  stmt.ColumnText(0),
					DisplayName: stmt.ColumnText(1),
					Team:        models.Team(stmt.ColumnText(2)),
					Role:        models.Role(stmt.ColumnText(3)),
					JoinedAt:    joinedAt,
				})
				return nil
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	return entries, nil
}

func (q *sqliteQueries) InsertEvents(ctx context.Context, events []models.RosterEvent) error {
	for _, ev := range events {
		if ev.ID == "" {
			ev.ID = q.deps.ids.NewUUID()
		}
		err := sqlitex.Execute(q.conn, `
			INSERT INTO roster_events (id, lobby_id, guild_id, type, discord_id, team, role, occurred_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`,
			&sqlitex.ExecOptions{Args: []any{
				ev.ID, ev.LobbyID, ev.GuildID, string(ev.Type), ev.ExternalID,
				string(ev.Team), string(ev.Role), formatTime(ev.OccurredAt),
			}},
		)
		if err != nil {
			return fmt.Errorf("insert event %s: %w", ev.ID, err)
		}
	}
	return nil
}

func (q *sqliteQueries) ListEvents(ctx context.Context, lobbyID string, limit int) ([]models.RosterEvent, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	events := []models.RosterEvent{}
	err := sqlitex.Execute(q.conn, `
		SELECT id, lobby_id, guild_id, type, discord_id, team, role, occurred_at
		FROM roster_events
		WHERE lobby_id = ?
		ORDER BY occurred_at DESC, rowid DESC
		LIMIT ?`,
		&sqlitex.ExecOptions{
			Args: []any{lobbyID, limit},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				occurredAt, err := parseTime(stmt.ColumnText(7))
				if err != nil {
					return err
				}
				events = append(events, models.RosterEvent{
					ID:         stmt.ColumnText(0),
					LobbyID:    stmt.ColumnText(1),
					GuildID:    stmt.ColumnText(2),
					Type:       models.EventType(stmt.ColumnText(3)),
					ExternalID: stmt.ColumnText(4),
					Team:       models.Team(stmt.ColumnText(5)),
					Role:       models.Role(stmt.ColumnText(6)),
					OccurredAt: occurredAt,
				})
				return nil
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
