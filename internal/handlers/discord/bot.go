package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gamblebot/internal/models"
	"github.com/KirkDiggler/gamblebot/internal/services/messaging"
)

const defaultHandlerTimeout = 30 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session        *discordgo.Session
	messenger      *ChannelMessenger
	plugins        []Plugin
	handlerTimeout time.Duration
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened Discord session
	Session *discordgo.Session

	// Messenger posts replies, usually over the same session
	Messenger *ChannelMessenger

	// Plugins receive every command message
	Plugins []Plugin

	// HandlerTimeout bounds how long plugins may work on one message
	HandlerTimeout time.Duration
}

// NewSession creates a Discord session that can read message content
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	timeout := cfg.HandlerTimeout
	if timeout <= 0 {
		timeout = defaultHandlerTimeout
	}

	bot := &Bot{
		session:        cfg.Session,
		messenger:      cfg.Messenger,
		plugins:        cfg.Plugins,
		handlerTimeout: timeout,
	}

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info().Int("plugins", len(b.plugins)).Msg("bot is now running")
	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Msg("I am ready!")
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	msg := toCommandMessage(m.Message, b.channelName(s, m.ChannelID))

	ctx, cancel := context.WithTimeout(context.Background(), b.handlerTimeout)
	defer cancel()

	b.dispatch(ctx, msg)
}

// channelName looks the channel up in the state cache first. DM channels have no name.
func (b *Bot) channelName(s *discordgo.Session, channelID string) string {
	channel, err := s.State.Channel(channelID)
	if err != nil {
		channel, err = s.Channel(channelID)
		if err != nil {
			log.Warn().Err(err).Str("channel_id", channelID).Msg("failed to look up channel")
			return ""
		}
	}

	if channel.Type == discordgo.ChannelTypeDM || channel.Type == discordgo.ChannelTypeGroupDM {
		return ""
	}
	return channel.Name
}

// dispatch handles the ping check and fans the message out to every plugin.
// A failing or panicking plugin is logged and does not affect the others.
func (b *Bot) dispatch(ctx context.Context, msg *models.CommandMessage) {
	log.Info().
		Str("user", msg.Author.Username).
		Str("channel_id", msg.Channel.ID).
		Str("content", msg.Content).
		Msg("message received")

	if msg.Content == "ping" {
		reply := fmt.Sprintf("%s, pong %s", messaging.Mention(msg.Author.ID), messaging.ChannelMention(msg.Channel.ID))
		if err := b.messenger.Send(ctx, msg.Channel.ID, reply); err != nil {
			log.Error().Err(err).Msg("failed to reply to ping")
		}
		return
	}

	if msg.Command == "" {
		return
	}

	var wg sync.WaitGroup
	for _, plugin := range b.plugins {
		wg.Add(1)
		go func(p Plugin) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Str("plugin", p.Name()).
						Str("command", msg.Command).
						Interface("panic", r).
						Msg("plugin panicked")
				}
			}()

			if err := p.HandleMessage(ctx, msg); err != nil {
				log.Error().
					Err(err).
					Str("plugin", p.Name()).
					Str("command", msg.Command).
					Msg("error from plugin")
			}
		}(plugin)
	}
	wg.Wait()
}

// toCommandMessage converts a Discord message. The member nickname is
// preferred as display name, then the global name, then the username.
func toCommandMessage(m *discordgo.Message, channelName string) *models.CommandMessage {
	displayName := m.Author.Username
	if m.Author.GlobalName != "" {
		displayName = m.Author.GlobalName
	}
	if m.Member != nil && m.Member.Nick != "" {
		displayName = m.Member.Nick
	}

	msg := &models.CommandMessage{
		Author: models.Author{
			ID:          m.Author.ID,
			Username:    m.Author.Username,
			DisplayName: displayName,
		},
		Channel: models.Channel{
			ID:   m.ChannelID,
			Name: channelName,
		},
		Content: m.Content,
	}

	if command, args, ok := ParseCommand(m.Content); ok {
		msg.Command = command
		msg.Args = args
	}

	return msg
}
