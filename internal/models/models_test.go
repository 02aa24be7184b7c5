package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Adjust(t *testing.T) {
	ledger := Ledger{}

	ledger.Adjust("1", "Volkner", -70)
	ledger.Adjust("2", "Zaahn", 70)
	ledger.Adjust("1", "", 30)
	ledger.Adjust("2", "Zaahn the Great", 5)

	assert.Equal(t, &LedgerEntry{ID: "1", DisplayName: "Volkner", Score: -40}, ledger["1"])
	assert.Equal(t, &LedgerEntry{ID: "2", DisplayName: "Zaahn the Great", Score: 75}, ledger["2"])
}

func TestLedger_Standings(t *testing.T) {
	ledger := Ledger{
		"c": {ID: "c", Score: 10},
		"a": {ID: "a", Score: 10},
		"b": {Score: 500},
		"d": {ID: "d", Score: -510},
	}

	standings := ledger.Standings()
	require.Len(t, standings, 4)

	ids := make([]string, len(standings))
	for i, e := range standings {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids)
}

func TestGame_Players(t *testing.T) {
	game := &Game{
		Players: []*PlayerEntry{
			{PlayerID: "1", Roll: 20},
			{PlayerID: "2"},
			{PlayerID: "3"},
		},
	}

	assert.False(t, game.AllRolled())
	assert.Equal(t, "2", game.GetPlayer("2").PlayerID)
	assert.Nil(t, game.GetPlayer("4"))

	pending := game.PendingPlayers()
	require.Len(t, pending, 2)
	assert.Equal(t, "2", pending[0].PlayerID)
	assert.Equal(t, "3", pending[1].PlayerID)

	game.Players[1].Roll = 1
	game.Players[2].Roll = 99
	assert.True(t, game.AllRolled())
	assert.Empty(t, game.PendingPlayers())

	assert.False(t, (&Game{}).AllRolled())
}

func TestGamePhase(t *testing.T) {
	assert.True(t, GamePhaseCollecting.IsCollecting())
	assert.False(t, GamePhaseCollecting.IsRolling())
	assert.True(t, GamePhaseRolling.IsRolling())
	assert.False(t, GamePhaseRolling.IsCollecting())
}
