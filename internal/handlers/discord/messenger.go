package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MessageSender is the part of the Discord session used to post messages
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelMessenger posts plain text messages to Discord channels
type ChannelMessenger struct {
	sender MessageSender
}

// NewChannelMessenger creates a messenger over a Discord session
func NewChannelMessenger(sender MessageSender) (*ChannelMessenger, error) {
	if sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	return &ChannelMessenger{
		sender: sender,
	}, nil
}

// Send posts content to a channel
func (m *ChannelMessenger) Send(ctx context.Context, channelID, content string) error {
	if _, err := m.sender.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}
