package models

// Author identifies the chat user that sent a command
type Author struct {
	// ID is the permanent chat platform user ID
	ID string

	// Username is the account name of the user
	Username string

	// DisplayName is the name shown in the channel (nickname if set)
	DisplayName string
}

// PlayerEntry represents a player's entry in a game
type PlayerEntry struct {
	// PlayerID is the chat platform user ID of the player
	PlayerID string

	// DisplayName is the display name captured when the player entered
	DisplayName string

	// Username is the account name of the player
	Username string

	// Roll is the value rolled by the player, zero until they roll
	Roll int64
}

// HasRolled returns true once the player has a roll recorded
func (p *PlayerEntry) HasRolled() bool {
	return p.Roll > 0
}
