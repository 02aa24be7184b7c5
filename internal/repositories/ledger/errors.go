package ledger

import "errors"

var (
	// ErrCorruptLedger is returned when a stored ledger exists but cannot be decoded
	ErrCorruptLedger = errors.New("ledger record is corrupt")

	// ErrInvalidGameName is returned for names that cannot be used as a storage key
	ErrInvalidGameName = errors.New("invalid game name")
)
