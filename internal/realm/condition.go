package realm

// Condition describes whether a piece of equipment is still usable.
// The transition is one-way: once destroyed, equipment never becomes
// good again.
type Condition string

// Equipment conditions
const (
	ConditionGood      Condition = "good"
	ConditionDestroyed Condition = "destroyed"
)

// String returns the string representation of the condition
func (c Condition) String() string {
	return string(c)
}
