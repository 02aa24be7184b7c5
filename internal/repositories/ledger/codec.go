package ledger

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/KirkDiggler/gamblebot/internal/models"
)

var gameNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateGameName(name string) error {
	if !gameNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidGameName, name)
	}
	return nil
}

// decodeLedger parses a stored ledger document. An empty document is an empty ledger.
func decodeLedger(data []byte) (models.Ledger, error) {
	ledger := models.Ledger{}
	if len(data) == 0 {
		return ledger, nil
	}

	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}

	// A stored "null" leaves the map nil
	if ledger == nil {
		ledger = models.Ledger{}
	}

	for id, entry := range ledger {
		if entry == nil {
			return nil, fmt.Errorf("%w: empty entry for %s", ErrCorruptLedger, id)
		}
		if entry.ID == "" {
			entry.ID = id
		}
	}

	return ledger, nil
}

func encodeLedger(ledger models.Ledger) ([]byte, error) {
	if ledger == nil {
		ledger = models.Ledger{}
	}

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger: %w", err)
	}

	return data, nil
}

func validateRecordResult(input *RecordResultInput) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}
	if err := validateGameName(input.GameName); err != nil {
		return err
	}
	if input.Winner.ID == "" || input.Loser.ID == "" {
		return fmt.Errorf("winner and loser IDs cannot be empty")
	}
	if input.Payout < 0 {
		return fmt.Errorf("payout cannot be negative: %d", input.Payout)
	}
	return nil
}

// applyResult debits the loser before crediting the winner so a player that is
// both ends up unchanged.
func applyResult(ledger models.Ledger, input *RecordResultInput) {
	ledger.Adjust(input.Loser.ID, input.Loser.DisplayName, -input.Payout)
	ledger.Adjust(input.Winner.ID, input.Winner.DisplayName, input.Payout)
}
