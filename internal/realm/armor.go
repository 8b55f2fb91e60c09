package realm

import (
	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
)

// ArmorType is the material an armor is made of. The material fixes the
// armor's maximum protection.
type ArmorType string

// Armor materials
const (
	ArmorTypeTin    ArmorType = "tin"
	ArmorTypeBronze ArmorType = "bronze"
)

// MaxProtection returns the protection ceiling for the material, or 0 for
// an unknown material
func (t ArmorType) MaxProtection() int {
	switch t {
	case ArmorTypeTin:
		return 70
	case ArmorTypeBronze:
		return 90
	default:
		return 0
	}
}

// String returns the string representation of the armor type
func (t ArmorType) String() string {
	return string(t)
}

// ArmorConfig holds the arguments for constructing an armor
type ArmorConfig struct {
	// Registry issues the armor's identifier
	Registry *identity.Registry

	// Identifier, when set, is adopted instead of generating a fresh one.
	// It must be prime and must not already be issued.
	Identifier *int64

	// Weight is the armor's weight in grams
	Weight int

	// BaseValue is the construction-time value in dukaten
	BaseValue int

	// Type is the armor's material, which fixes its maximum protection
	Type ArmorType
}

// Validate checks the construction arguments
func (c *ArmorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	errors.ValidateNonNegative("Weight", c.Weight, vb)
	errors.ValidateRange("BaseValue", c.BaseValue, 0, maxArmorBaseValue, vb)
	if c.Type.MaxProtection() == 0 {
		vb.Fieldf("Type", "unknown armor type %q", c.Type)
	}

	return vb.Build()
}

// Armor is equipment that raises its wearer's protection while worn on the
// body anchor. Protection wears down from its material maximum.
type Armor struct {
	equipmentCore
	armorType         ArmorType
	currentProtection int
}

// NewArmor constructs an armor at full protection and registers its
// identifier
func NewArmor(cfg *ArmorConfig) (*Armor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Armor{
		armorType:         cfg.Type,
		currentProtection: cfg.Type.MaxProtection(),
	}
	ec, err := newEquipmentCore(a, identity.CategoryArmor, cfg.Registry, cfg.Identifier, cfg.Weight, cfg.BaseValue)
	if err != nil {
		return nil, err
	}
	a.equipmentCore = ec
	return a, nil
}

var _ Equipment = (*Armor)(nil)

// Type returns the armor's material
func (a *Armor) Type() ArmorType {
	return a.armorType
}

// MaxProtection returns the material's protection ceiling
func (a *Armor) MaxProtection() int {
	return a.armorType.MaxProtection()
}

// CurrentProtection returns the protection the armor grants right now
func (a *Armor) CurrentProtection() int {
	return a.currentProtection
}

// SetCurrentProtection sets the armor's present protection, between 1 and
// the material maximum. Destroyed armor cannot be repaired.
func (a *Armor) SetCurrentProtection(protection int) error {
	if a.condition == ConditionDestroyed {
		return errors.FailedPreconditionf("armor %s is destroyed", a.GetID())
	}
	if protection < 1 || protection > a.MaxProtection() {
		return errors.InvalidArgumentf("protection must be between 1 and %d, got %d",
			a.MaxProtection(), protection)
	}
	a.currentProtection = protection
	return nil
}

// CurrentValue prices the armor by how much of its protection remains:
// base value scaled by current over maximum protection.
func (a *Armor) CurrentValue() int {
	return a.baseValue * a.currentProtection / a.MaxProtection()
}
