// Package discord exposes the roster engine as a /lobby slash command.
package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/roster"
)

// interactionTimeout bounds a single command. Discord drops responses that
// arrive later than three seconds anyway.
const interactionTimeout = 3 * time.Second

// Bot represents the Discord bot
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string
	service    roster.Service
	config     *Config
	log        *logrus.Logger
}

// Config holds configuration for the Discord bot
type Config struct {
	Token         string
	ApplicationID string
	// GuildID registers commands for a single guild. Empty registers them
	// globally.
	GuildID string
	Service roster.Service
	Logger  *logrus.Logger
}

var (
	ErrMissingToken   = errors.New("discord: token is required")
	ErrMissingService = errors.New("discord: roster service is required")
)

// New creates a new Discord bot. The connection is opened by Start.
func New(cfg *Config) (*Bot, error) {
	if cfg == nil || cfg.Token == "" {
		return nil, ErrMissingToken
	}
	if cfg.Service == nil {
		return nil, ErrMissingService
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		service:    cfg.Service,
		config:     cfg,
		log:        log,
	}
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the gateway connection and registers the /lobby command.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewLobbyCommand(b.service, b.log)); err != nil {
		_ = b.session.Close()
		return fmt.Errorf("failed to register lobby command: %w", err)
	}

	b.log.Info("discord bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection.
func (b *Bot) Stop() error {
	appID := b.appID()
	for name, id := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, id); err != nil {
			b.log.WithError(err).WithField("command", name).Warn("failed to delete command")
			continue
		}
		b.log.WithField("command", name).Debug("deleted command")
	}
	return b.session.Close()
}

// Run starts the bot and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return b.Stop()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	fields := logrus.Fields{"command": cmd.GetName()}
	if b.config.GuildID != "" {
		fields["guild"] = b.config.GuildID
	}

	created, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = created.ID
	b.log.WithFields(fields).WithField("id", created.ID).Info("registered command")
	return nil
}

// appID falls back to the session user when no application id is configured.
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()
	if err := h.Handle(ctx, s, i); err != nil {
		b.log.WithError(err).WithField("command", name).Error("error handling command")
	}
}
