// Package testutils provides deterministic dice and ready-made fixtures
// for tests.
package testutils

//go:generate mockgen -destination=mockdice/mock.go -package=mockdice github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/errors"
)

// ScriptedRoller implements dice.Roller by replaying a fixed sequence of
// rolls. Values are returned exactly as scripted, regardless of the
// requested size; running past the script is an error so a test never
// consumes more randomness than it accounted for.
type ScriptedRoller struct {
	rolls []int
	next  int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns the given values in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if r.next >= len(r.rolls) {
		return 0, errors.Internalf("scripted roller exhausted after %d rolls", len(r.rolls))
	}
	roll := r.rolls[r.next]
	r.next++
	return roll, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
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

// Remaining returns how many scripted values are left unconsumed
func (r *ScriptedRoller) Remaining() int {
	return len(r.rolls) - r.next
}
