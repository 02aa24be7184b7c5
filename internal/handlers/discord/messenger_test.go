package discord

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records messages instead of calling Discord
type fakeSender struct {
	mu   sync.Mutex
	sent map[string][]string
	err  error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(map[string][]string)}
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	f.sent[channelID] = append(f.sent[channelID], content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSender) messages(channelID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent[channelID]...)
}

func TestChannelMessenger_Send(t *testing.T) {
	sender := newFakeSender()
	messenger, err := NewChannelMessenger(sender)
	require.NoError(t, err)

	require.NoError(t, messenger.Send(context.Background(), "10", "hello"))
	assert.Equal(t, []string{"hello"}, sender.messages("10"))
}

func TestChannelMessenger_SendError(t *testing.T) {
	sender := newFakeSender()
	sender.err = errors.New("rate limited")

	messenger, err := NewChannelMessenger(sender)
	require.NoError(t, err)

	err = messenger.Send(context.Background(), "10", "hello")
	assert.ErrorIs(t, err, sender.err)
	assert.Contains(t, err.Error(), "channel 10")
}

func TestNewChannelMessenger_NilSender(t *testing.T) {
	_, err := NewChannelMessenger(nil)
	assert.Error(t, err)
}
