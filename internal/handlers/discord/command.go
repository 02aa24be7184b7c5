package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/gamblebot/internal/models"
)

// CommandPrefix marks a chat message as a bot command
const CommandPrefix = "!"

// Plugin receives every parsed command message. Plugins decide for
// themselves which commands they answer and ignore the rest.
type Plugin interface {
	// Name identifies the plugin in logs
	Name() string

	// HandleMessage processes a command message
	HandleMessage(ctx context.Context, msg *models.CommandMessage) error
}

// ParseCommand splits "!name arg1 arg2" into its name and arguments.
// Content without the prefix or without a name is not a command.
func ParseCommand(content string) (string, []string, bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, CommandPrefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, CommandPrefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}
