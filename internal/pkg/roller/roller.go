// Package roller provides deterministic implementations of the
// rpg-toolkit dice.Roller interface.
package roller

import (
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/errors"
)

// Seeded implements dice.Roller on top of a seeded math/rand source.
// Two rollers built from the same seed produce identical sequences,
// which makes battles replayable. Not safe for concurrent use.
type Seeded struct {
	src *rand.Rand
}

// NewSeeded creates a roller whose rolls are fully determined by seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{src: rand.New(rand.NewSource(seed))}
}

// Roll returns a random value in [1, size]
func (r *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("roll size must be positive, got %d", size)
	}
	return r.src.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("roll count must not be negative, got %d", count)
	}
	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

var _ dice.Roller = (*Seeded)(nil)
