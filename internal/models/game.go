package models

import (
	"time"
)

// GamePhase represents the current state of a gamble game
type GamePhase string

const (
	// GamePhaseCollecting indicates the game is accepting entries
	GamePhaseCollecting GamePhase = "collecting"

	// GamePhaseRolling indicates entries are closed and players are rolling
	GamePhaseRolling GamePhase = "rolling"
)

// IsCollecting returns true if the game is still accepting entries
func (p GamePhase) IsCollecting() bool {
	return p == GamePhaseCollecting
}

// IsRolling returns true if entries are closed and rolls are being taken
func (p GamePhase) IsRolling() bool {
	return p == GamePhaseRolling
}

// Game represents a single gamble game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// MaxRoll is the upper bound every player rolls against
	MaxRoll int64

	// GameMaster is the player who started the game
	GameMaster Author

	// ChannelID is the chat channel where the game is being played
	ChannelID string

	// ChannelName is the display name of the channel
	ChannelName string

	// Phase is the current state of the game
	Phase GamePhase

	// Players holds the entrants in the order they first entered
	Players []*PlayerEntry

	// CreatedAt is when the game was started
	CreatedAt time.Time

	// MagicRollUsed is set when a roll was overridden by the magic roll rule
	MagicRollUsed bool
}

// GetPlayer returns the entry for a player, or nil if they have not entered
func (g *Game) GetPlayer(playerID string) *PlayerEntry {
	for _, p := range g.Players {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

// PendingPlayers returns the entrants that have not rolled yet, in entry order
func (g *Game) PendingPlayers() []*PlayerEntry {
	var pending []*PlayerEntry
	for _, p := range g.Players {
		if !p.HasRolled() {
			pending = append(pending, p)
		}
	}
	return pending
}

// AllRolled returns true if there is at least one entrant and every entrant has rolled
func (g *Game) AllRolled() bool {
	return len(g.Players) > 0 && len(g.PendingPlayers()) == 0
}
