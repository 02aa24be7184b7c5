package models

import "sort"

// LedgerEntry is a player's cumulative score across games
type LedgerEntry struct {
	// ID is the chat platform user ID; usernames change, IDs do not
	ID string `json:"id"`

	// DisplayName is the player's name at the time of the last update
	DisplayName string `json:"username"`

	// Score is the running total, negative when the player owes more than they won
	Score int64 `json:"score"`
}

// Ledger maps player IDs to their cumulative scores for one game type
type Ledger map[string]*LedgerEntry

// Adjust adds delta to a player's score, creating the entry if needed.
// The display name is refreshed whenever one is supplied.
func (l Ledger) Adjust(playerID, displayName string, delta int64) {
	entry, ok := l[playerID]
	if !ok {
		entry = &LedgerEntry{ID: playerID}
		l[playerID] = entry
	}
	if displayName != "" {
		entry.DisplayName = displayName
	}
	entry.Score += delta
}

// Standings returns the entries ordered by score, highest first.
// Equal scores are ordered by player ID so the output is stable.
func (l Ledger) Standings() []*LedgerEntry {
	entries := make([]*LedgerEntry, 0, len(l))
	for id, entry := range l {
		if entry.ID == "" {
			entry.ID = id
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ID < entries[j].ID
	})

	return entries
}
