package realm

import (
	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
)

// Weapon damage bounds: damage comes in multiples of seven, capped at 100.
const (
	weaponDamageStep = 7
	weaponDamageMax  = 100
)

// A weapon is worth two dukaten per point of damage it deals.
const weaponValuePerDamage = 2

// WeaponConfig holds the arguments for constructing a weapon
type WeaponConfig struct {
	// Registry issues the weapon's identifier
	Registry *identity.Registry

	// Identifier, when set, is adopted instead of generating a fresh one.
	// It must divide evenly by 2 and 3 and must not already be issued.
	Identifier *int64

	// Weight is the weapon's weight in grams
	Weight int

	// BaseValue is the construction-time value in dukaten
	BaseValue int

	// Damage is dealt per connecting hit; a positive multiple of 7, at most 100
	Damage int
}

// Validate checks the construction arguments
func (c *WeaponConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	errors.ValidateNonNegative("Weight", c.Weight, vb)
	errors.ValidateRange("BaseValue", c.BaseValue, 0, maxWeaponBaseValue, vb)
	errors.ValidatePositiveMultipleOf("Damage", c.Damage, weaponDamageStep, vb)
	if c.Damage > weaponDamageMax {
		vb.Fieldf("Damage", "must not exceed %d, got %d", weaponDamageMax, c.Damage)
	}

	return vb.Build()
}

// Weapon is equipment that adds damage to its wielder's attacks
type Weapon struct {
	equipmentCore
	damage int
}

// NewWeapon constructs a weapon and registers its identifier
func NewWeapon(cfg *WeaponConfig) (*Weapon, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Weapon{damage: cfg.Damage}
	ec, err := newEquipmentCore(w, identity.CategoryWeapon, cfg.Registry, cfg.Identifier, cfg.Weight, cfg.BaseValue)
	if err != nil {
		return nil, err
	}
	w.equipmentCore = ec
	return w, nil
}

var _ Equipment = (*Weapon)(nil)

// Damage returns the damage dealt per connecting hit
func (w *Weapon) Damage() int {
	return w.damage
}

// SetDamage changes the weapon's damage, under the same bounds as at
// construction. Destroyed weapons cannot be re-forged.
func (w *Weapon) SetDamage(damage int) error {
	if w.condition == ConditionDestroyed {
		return errors.FailedPreconditionf("weapon %s is destroyed", w.GetID())
	}
	if damage <= 0 || damage%weaponDamageStep != 0 || damage > weaponDamageMax {
		return errors.InvalidArgumentf("damage must be a positive multiple of %d up to %d, got %d",
			weaponDamageStep, weaponDamageMax, damage)
	}
	w.damage = damage
	return nil
}

// CurrentValue prices the weapon by its damage, two dukaten per point
func (w *Weapon) CurrentValue() int {
	return w.damage * weaponValuePerDamage
}
