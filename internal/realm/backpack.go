package realm

import (
	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
)

// BackpackConfig holds the arguments for constructing a backpack
type BackpackConfig struct {
	// Registry issues the backpack's identifier
	Registry *identity.Registry

	// Identifier, when set, is adopted instead of generating a fresh one
	Identifier *int64

	// Weight is the empty backpack's weight in grams
	Weight int

	// BaseValue is the construction-time value in dukaten
	BaseValue int

	// Capacity bounds the total weight of the contents, in grams
	Capacity int
}

// Validate checks the construction arguments
func (c *BackpackConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	errors.ValidateNonNegative("Weight", c.Weight, vb)
	errors.ValidateRange("BaseValue", c.BaseValue, 0, maxBackpackBaseValue, vb)
	errors.ValidateNonNegative("Capacity", c.Capacity, vb)

	return vb.Build()
}

// Backpack is equipment that contains further equipment up to a weight
// capacity. Contents are indexed by identifier; identifiers from different
// categories may coincide, so each identifier maps to a list.
type Backpack struct {
	equipmentCore
	capacity     int
	byIdentifier map[int64][]Equipment
	contents     []Equipment
}

// NewBackpack constructs an empty backpack and registers its identifier
func NewBackpack(cfg *BackpackConfig) (*Backpack, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Backpack{
		capacity:     cfg.Capacity,
		byIdentifier: make(map[int64][]Equipment),
	}
	ec, err := newEquipmentCore(b, identity.CategoryBackpack, cfg.Registry, cfg.Identifier, cfg.Weight, cfg.BaseValue)
	if err != nil {
		return nil, err
	}
	b.equipmentCore = ec
	return b, nil
}

var _ Equipment = (*Backpack)(nil)

// Capacity returns the weight of contents the backpack can hold, in grams
func (b *Backpack) Capacity() int {
	return b.capacity
}

// Contains reports whether item is directly inside this backpack
func (b *Backpack) Contains(item Equipment) bool {
	if item == nil {
		return false
	}
	for _, held := range b.byIdentifier[item.Identifier()] {
		if held == item {
			return true
		}
	}
	return false
}

// Contents returns the contained items in insertion order
func (b *Backpack) Contents() []Equipment {
	out := make([]Equipment, len(b.contents))
	copy(out, b.contents)
	return out
}

// ItemsByIdentifier returns every contained item carrying the given
// identifier. Identifiers are unique within a category but not across
// categories, so the result can hold more than one item.
func (b *Backpack) ItemsByIdentifier(id int64) []Equipment {
	held := b.byIdentifier[id]
	out := make([]Equipment, len(held))
	copy(out, held)
	return out
}

// ContentsWeight returns the total weight of the contained items, including
// whatever they hold in turn
func (b *Backpack) ContentsWeight() int {
	total := 0
	for _, item := range b.contents {
		total += item.TotalWeight()
	}
	return total
}

// TotalWeight returns the backpack's own weight plus its contents' weight
func (b *Backpack) TotalWeight() int {
	return b.weight + b.ContentsWeight()
}

// CurrentValue prices the backpack at its base value plus the current
// values of everything inside
func (b *Backpack) CurrentValue() int {
	total := b.baseValue
	for _, item := range b.contents {
		total += item.CurrentValue()
	}
	return total
}

// CanAccept reports whether item may be placed into this backpack: both
// sides must be good, the item must not be the backpack itself or one of
// its ancestors (no containment cycles), and the contents weight including
// the item must stay within capacity.
func (b *Backpack) CanAccept(item Equipment) bool {
	if item == nil || b.condition == ConditionDestroyed || item.Condition() == ConditionDestroyed {
		return false
	}
	if item == b.self {
		return false
	}
	for ancestor := b.container; ancestor != nil; ancestor = ancestor.container {
		if item == ancestor.self {
			return false
		}
	}
	return b.ContentsWeight()+item.TotalWeight() <= b.capacity
}

// Destroy marks the backpack destroyed and evicts every contained item.
// Eviction is a detach, not a destroy: evicted items survive, except purses,
// which rip as they tumble out. Safe to call repeatedly.
func (b *Backpack) Destroy() {
	if b.condition == ConditionDestroyed {
		return
	}
	for _, item := range b.Contents() {
		item.coreRef().container = nil
		b.removeItem(item)
		if purse, ok := item.(*Purse); ok {
			purse.Destroy()
		}
	}
	b.equipmentCore.Destroy()
}

// addItem records item in the contents index. The item's container
// back-reference must already point here and the item must not be present:
// violations are calling-sequence bugs, not runtime conditions.
func (b *Backpack) addItem(item Equipment) {
	if item.Container() != b {
		panic("realm: backpack add before the container back-reference is set")
	}
	if b.Contains(item) {
		panic("realm: backpack already contains " + item.GetID())
	}
	id := item.Identifier()
	b.byIdentifier[id] = append(b.byIdentifier[id], item)
	b.contents = append(b.contents, item)
}

// removeItem drops item from the contents index. The item's container
// back-reference must already be cleared, mirroring addItem.
func (b *Backpack) removeItem(item Equipment) {
	if item.Container() == b {
		panic("realm: backpack remove while the container back-reference still points here")
	}
	id := item.Identifier()
	held := b.byIdentifier[id]
	found := false
	for i, candidate := range held {
		if candidate == item {
			b.byIdentifier[id] = append(held[:i], held[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		panic("realm: backpack remove of an item it does not contain: " + item.GetID())
	}
	if len(b.byIdentifier[id]) == 0 {
		delete(b.byIdentifier, id)
	}
	for i, candidate := range b.contents {
		if candidate == item {
			b.contents = append(b.contents[:i], b.contents[i+1:]...)
			break
		}
	}
}
