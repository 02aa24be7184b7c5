package ledger

import "github.com/KirkDiggler/gamblebot/internal/models"

// GetLedgerInput contains parameters for loading a ledger
type GetLedgerInput struct {
	// GameName is the game type the ledger belongs to, e.g. "gamble"
	GameName string
}

// GetLedgerOutput contains the loaded ledger
type GetLedgerOutput struct {
	Ledger models.Ledger
}

// SaveLedgerInput contains parameters for saving a ledger
type SaveLedgerInput struct {
	GameName string
	Ledger   models.Ledger
}

// Participant identifies a player whose score is being adjusted
type Participant struct {
	// ID is the permanent chat platform user ID
	ID string

	// DisplayName is captured alongside the score for display
	DisplayName string
}

// RecordResultInput contains the outcome of a resolved game
type RecordResultInput struct {
	GameName string

	// Winner is credited the payout
	Winner Participant

	// Loser is debited the payout
	Loser Participant

	// Payout is the difference between the highest and lowest roll
	Payout int64
}

// RecordResultOutput contains the ledger after the result was applied
type RecordResultOutput struct {
	Ledger models.Ledger
}
