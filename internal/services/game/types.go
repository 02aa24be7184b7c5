package game

import (
	"github.com/KirkDiggler/gamblebot/internal/common/clock"
	"github.com/KirkDiggler/gamblebot/internal/common/uuid"
	"github.com/KirkDiggler/gamblebot/internal/dice"
	"github.com/KirkDiggler/gamblebot/internal/models"
	ledgerRepo "github.com/KirkDiggler/gamblebot/internal/repositories/ledger"
)

// DefaultGameName is the ledger record the gamble game writes to
const DefaultGameName = "gamble"

// Command is a recognized chat command
type Command string

const (
	// CommandStart starts a new game, e.g. `!gamble 1000`
	CommandStart Command = "gamble"

	// CommandEnter enters the active game
	CommandEnter Command = "enter"

	// CommandWithdraw leaves the active game before rolling starts
	CommandWithdraw Command = "withdraw"

	// CommandPlay closes entries and starts the rolls
	CommandPlay Command = "play"

	// CommandRoll rolls for the active game
	CommandRoll Command = "roll"

	// CommandCancel discards the active game
	CommandCancel Command = "cancel"

	// CommandStats shows the running totals
	CommandStats Command = "gambleStats"
)

// ParseCommand maps a raw command name onto a recognized Command
func ParseCommand(name string) (Command, bool) {
	switch cmd := Command(name); cmd {
	case CommandStart, CommandEnter, CommandWithdraw, CommandPlay, CommandRoll, CommandCancel, CommandStats:
		return cmd, true
	}
	return "", false
}

// Config holds configuration for the game service
type Config struct {
	// GameName is the ledger record name, defaults to DefaultGameName
	GameName string

	// Starters are the user IDs allowed to start a game; empty allows everyone
	Starters []string

	// TrialMode marks games as "for fun" in the announcement and outcome
	TrialMode bool

	// MagicRoll enables the username derived automatic max roll.
	// Games where it fires are not recorded in the ledger.
	MagicRoll bool

	// Repository dependencies
	LedgerRepo ledgerRepo.Repository

	// Service dependencies
	Messenger     Messenger
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// HandleCommandInput contains a parsed chat command
type HandleCommandInput struct {
	// Command is the command name without the prefix
	Command string

	// Args are the command arguments
	Args []string

	// Author is the user that sent the command
	Author models.Author

	// Channel is where the command was sent
	Channel models.Channel
}

// GetCurrentGameInput contains parameters for getting the active game
type GetCurrentGameInput struct{}

// GetCurrentGameOutput contains the active game
type GetCurrentGameOutput struct {
	// Game is a copy of the active game, nil when no game is active
	Game *models.Game
}

// GetStandingsInput contains parameters for getting the running totals
type GetStandingsInput struct{}

// GetStandingsOutput contains the running totals
type GetStandingsOutput struct {
	Entries []*models.LedgerEntry
}
