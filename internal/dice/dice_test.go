package dice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestRollInRange checks every roll lands in [1, sides] for any positive bound
func TestRollInRange(t *testing.T) {
	roller := New(nil)

	rapid.Check(t, func(t *rapid.T) {
		sides := rapid.Int64Range(1, math.MaxInt64).Draw(t, "sides")

		got := roller.Roll(sides)
		if got < 1 || got > sides {
			t.Fatalf("roll %d out of range [1, %d]", got, sides)
		}
	})
}

func TestRollSingleSide(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(1), roller.Roll(1))
	}
}

func TestRollInvalidSides(t *testing.T) {
	roller := New(&Config{Seed: 42})

	assert.Equal(t, int64(1), roller.Roll(0))
	assert.Equal(t, int64(1), roller.Roll(-10))
}

func TestRollSeeded(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Roll(1000), b.Roll(1000))
	}
}

// TestRollDistribution is a chi-squared check that a 10-sided roll is roughly uniform
func TestRollDistribution(t *testing.T) {
	const (
		sides  = 10
		trials = 100000
	)

	roller := New(&Config{Seed: 1234})
	counts := make([]int, sides+1)
	for i := 0; i < trials; i++ {
		counts[roller.Roll(sides)]++
	}

	require.Zero(t, counts[0])

	expected := float64(trials) / sides
	var chi2 float64
	for face := 1; face <= sides; face++ {
		diff := float64(counts[face]) - expected
		chi2 += diff * diff / expected
	}

	// 9 degrees of freedom, p = 0.001
	assert.Less(t, chi2, 27.88)
}
