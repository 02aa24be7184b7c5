package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gamblebot/internal/services/game Service

// Service defines the interface for gamble operations
type Service interface {
	// HandleCommand routes a parsed chat command to the matching game operation.
	// Unrecognized commands are ignored without a reply.
	HandleCommand(ctx context.Context, input *HandleCommandInput) error

	// GetCurrentGame returns a snapshot of the active game, if any
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*GetCurrentGameOutput, error)

	// GetStandings returns the running totals from the ledger, highest first
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)
}

// Messenger posts text into a chat channel
type Messenger interface {
	Send(ctx context.Context, channelID, content string) error
}
