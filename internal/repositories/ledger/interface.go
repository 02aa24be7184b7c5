package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamblebot/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for score ledger persistence
type Repository interface {
	// GetLedger loads the ledger for a game type, empty if none was saved yet
	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)

	// SaveLedger overwrites the full ledger for a game type
	SaveLedger(ctx context.Context, input *SaveLedgerInput) error

	// RecordResult credits the winner and debits the loser in one read-modify-write
	RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error)
}
