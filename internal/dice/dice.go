package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/gamblebot/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Roller draws uniform random rolls
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int64) int64
}

// RandomRoller provides dice rolling functionality backed by math/rand
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random roll between 1 and sides inclusive
func (r *RandomRoller) Roll(sides int64) int64 {
	if sides < 1 {
		sides = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Int63n(sides) + 1
}
