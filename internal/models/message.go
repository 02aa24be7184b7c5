package models

// Channel identifies the chat channel a command was sent in
type Channel struct {
	// ID is the chat platform channel ID
	ID string

	// Name is the channel name; empty for direct messages
	Name string
}

// CommandMessage is an inbound chat message parsed into a command and its arguments
type CommandMessage struct {
	// Command is the command name without the prefix, empty if the message was not a command
	Command string

	// Args are the whitespace separated arguments following the command
	Args []string

	// Author is the user that sent the message
	Author Author

	// Channel is where the message was sent
	Channel Channel

	// Content is the raw message text
	Content string
}
