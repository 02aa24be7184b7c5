// Package messaging builds the chat text posted by the gamble game.
package messaging

import (
	"fmt"
	"strings"
)

// Mention renders a user mention
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// ChannelMention renders a channel link
func ChannelMention(channelID string) string {
	return fmt.Sprintf("<#%s>", channelID)
}

// MentionList renders a comma separated list of user mentions in the given order
func MentionList(userIDs []string) string {
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = Mention(id)
	}
	return strings.Join(mentions, ", ")
}
