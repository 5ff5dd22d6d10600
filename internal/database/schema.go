package database

// Constraint names shared by both schemas. The Postgres backend classifies
// unique violations by name.
const (
	constraintSlot        = "lobby_players_slot_key"
	constraintLobbyPlayer = "lobby_players_pkey"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS lobbies (
	id TEXT PRIMARY KEY,
	guild_id TEXT NOT NULL,
	name TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS lobbies_guild_idx ON lobbies (guild_id);

CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	discord_id TEXT NOT NULL UNIQUE,
	discord_name TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lobby_players (
	lobby_id TEXT NOT NULL,
	player_id TEXT NOT NULL,
	team TEXT NOT NULL CHECK (team IN ('light', 'dark')),
	role TEXT NOT NULL CHECK (role IN ('carry', 'mid', 'offlane', 'support', 'hardsupport')),
	joined_at TEXT NOT NULL,
	CONSTRAINT lobby_players_pkey PRIMARY KEY (lobby_id, player_id),
	CONSTRAINT lobby_players_slot_key UNIQUE (lobby_id, team, role),
	FOREIGN KEY (lobby_id) REFERENCES lobbies (id) ON DELETE CASCADE,
	FOREIGN KEY (player_id) REFERENCES players (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS roster_events (
	id TEXT PRIMARY KEY,
	lobby_id TEXT NOT NULL,
	guild_id TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	discord_id TEXT NOT NULL DEFAULT '',
	team TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	occurred_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS roster_events_lobby_idx ON roster_events (lobby_id, occurred_at);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS lobbies (
	seq BIGINT GENERATED ALWAYS AS IDENTITY,
	id TEXT PRIMARY KEY,
	guild_id TEXT NOT NULL,
	name TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS lobbies_guild_idx ON lobbies (guild_id);

CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	discord_id TEXT NOT NULL UNIQUE,
	discord_name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS lobby_players (
	seq BIGINT GENERATED ALWAYS AS IDENTITY,
	lobby_id TEXT NOT NULL REFERENCES lobbies (id) ON DELETE CASCADE,
	player_id TEXT NOT NULL REFERENCES players (id) ON DELETE CASCADE,
	team TEXT NOT NULL CHECK (team IN ('light', 'dark')),
	role TEXT NOT NULL CHECK (role IN ('carry', 'mid', 'offlane', 'support', 'hardsupport')),
	joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT lobby_players_pkey PRIMARY KEY (lobby_id, player_id),
	CONSTRAINT lobby_players_slot_key UNIQUE (lobby_id, team, role)
);

CREATE TABLE IF NOT EXISTS roster_events (
	seq BIGINT GENERATED ALWAYS AS IDENTITY,
	id TEXT PRIMARY KEY,
	lobby_id TEXT NOT NULL,
	guild_id TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	discord_id TEXT NOT NULL DEFAULT '',
	team TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS roster_events_lobby_idx ON roster_events (lobby_id, occurred_at);
`
