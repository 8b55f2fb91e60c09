package realm

import (
	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
)

// dukatWeight is the weight of a single dukat in grams. A purse grows
// heavier with every coin it holds.
const dukatWeight = 5

// PurseConfig holds the arguments for constructing a purse
type PurseConfig struct {
	// Registry issues the purse's identifier
	Registry *identity.Registry

	// Identifier, when set, is adopted instead of generating a fresh one
	Identifier *int64

	// Weight is the empty purse's weight in grams
	Weight int

	// BaseValue is the construction-time value in dukaten
	BaseValue int

	// Capacity is the most dukaten the purse can hold before it rips
	Capacity int
}

// Validate checks the construction arguments
func (c *PurseConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	errors.ValidateNonNegative("Weight", c.Weight, vb)
	errors.ValidateRange("BaseValue", c.BaseValue, 0, maxPurseBaseValue, vb)
	errors.ValidateNonNegative("Capacity", c.Capacity, vb)

	return vb.Build()
}

// Purse is equipment that holds dukaten up to a capacity. Overfilling a
// purse rips it: the coins spill (contents drop to zero) and the purse is
// destroyed.
type Purse struct {
	equipmentCore
	capacity int
	contents int
}

// NewPurse constructs an empty purse and registers its identifier
func NewPurse(cfg *PurseConfig) (*Purse, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Purse{capacity: cfg.Capacity}
	ec, err := newEquipmentCore(p, identity.CategoryPurse, cfg.Registry, cfg.Identifier, cfg.Weight, cfg.BaseValue)
	if err != nil {
		return nil, err
	}
	p.equipmentCore = ec
	return p, nil
}

var _ Equipment = (*Purse)(nil)

// Capacity returns the most dukaten the purse can hold
func (p *Purse) Capacity() int {
	return p.capacity
}

// Contents returns the dukaten currently held
func (p *Purse) Contents() int {
	return p.contents
}

// AddToContents puts dukaten into the purse. Filling it past capacity rips
// the purse: contents drop to zero and the purse is destroyed. The rip is
// a modeled outcome, not an error.
func (p *Purse) AddToContents(amount int) error {
	if p.condition == ConditionDestroyed {
		return errors.FailedPreconditionf("purse %s is destroyed", p.GetID())
	}
	if amount < 0 {
		return errors.InvalidArgumentf("amount must not be negative, got %d", amount)
	}

	if p.contents+amount > p.capacity {
		p.Destroy()
		return nil
	}
	p.contents += amount
	return nil
}

// RemoveFromContents takes dukaten out of the purse
func (p *Purse) RemoveFromContents(amount int) error {
	if p.condition == ConditionDestroyed {
		return errors.FailedPreconditionf("purse %s is destroyed", p.GetID())
	}
	if amount < 0 {
		return errors.InvalidArgumentf("amount must not be negative, got %d", amount)
	}
	if amount > p.contents {
		return errors.InvalidArgumentf("cannot remove %d dukaten, purse holds %d", amount, p.contents)
	}

	p.contents -= amount
	return nil
}

// TotalWeight returns the purse's weight plus the weight of its coins
func (p *Purse) TotalWeight() int {
	return p.weight + p.contents*dukatWeight
}

// CurrentValue prices the purse at its base value plus the coins inside
func (p *Purse) CurrentValue() int {
	return p.baseValue + p.contents
}

// Destroy rips the purse: the coins spill and the condition becomes
// destroyed. Safe to call repeatedly.
func (p *Purse) Destroy() {
	if p.condition == ConditionDestroyed {
		return
	}
	p.contents = 0
	p.equipmentCore.Destroy()
}
