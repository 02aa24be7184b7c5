package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilLedgerRepo    GameError = "ledger repository cannot be nil"
	ErrNilMessenger     GameError = "messenger cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrLedgerUpdate     GameError = "failed to record game result"
)
