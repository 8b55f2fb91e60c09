package realm

import (
	"unicode"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/errors"
)

// SkinType is the hide a monster wears. The skin fixes the monster's
// maximum protection.
type SkinType string

// Monster skins
const (
	SkinTypeHide   SkinType = "hide"
	SkinTypeScales SkinType = "scales"
	SkinTypeStone  SkinType = "stone"
)

// MaxProtection returns the protection ceiling for the skin, or 0 for an
// unknown skin
func (t SkinType) MaxProtection() int {
	switch t {
	case SkinTypeHide:
		return 25
	case SkinTypeScales:
		return 50
	case SkinTypeStone:
		return 75
	default:
		return 0
	}
}

// String returns the string representation of the skin type
func (t SkinType) String() string {
	return string(t)
}

// Monster attack damage uses the weapon damage scale: a positive multiple
// of 7, at most 100.
const (
	monsterDamageStep = 7
	monsterDamageMax  = 100
)

// MonsterConfig holds the dependencies and stats needed to create a monster
type MonsterConfig struct {
	Name         string
	MaxHitPoints int

	// Damage is the monster's attack damage before the defender's
	// protection is subtracted. Positive multiple of 7, at most 100.
	Damage int

	// Skin fixes the monster's maximum protection
	Skin SkinType

	// Protection is the monster's current protection, at most the skin's
	// maximum
	Protection int

	// AnchorCount is the number of anonymous anchor points the monster
	// starts with. It must cover the starting loadout.
	AnchorCount int

	// Loadout is the equipment the monster starts with. Items must be
	// intact and unowned. The monster's carry capacity is set to the
	// loadout's total weight.
	Loadout []Equipment

	Roller dice.Roller
}

// Validate ensures the config is complete and the stats are legal
func (c *MonsterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Name == "" {
		vb.RequiredField("Name")
	} else if !ValidMonsterName(c.Name) {
		vb.Fieldf("Name", "%q is not a valid monster name", c.Name)
	}
	if c.MaxHitPoints < 1 {
		vb.Fieldf("MaxHitPoints", "must be positive, got %d", c.MaxHitPoints)
	}
	errors.ValidatePositiveMultipleOf("Damage", c.Damage, monsterDamageStep, vb)
	if c.Damage > monsterDamageMax {
		vb.Fieldf("Damage", "must not exceed %d, got %d", monsterDamageMax, c.Damage)
	}
	if c.Skin.MaxProtection() == 0 {
		vb.Fieldf("Skin", "unknown skin type %q", c.Skin)
	} else {
		errors.ValidateRange("Protection", c.Protection, 0, c.Skin.MaxProtection(), vb)
	}
	errors.ValidateNonNegative("AnchorCount", c.AnchorCount, vb)
	if c.AnchorCount < len(c.Loadout) {
		vb.Fieldf("AnchorCount", "must cover the loadout: %d anchors for %d items", c.AnchorCount, len(c.Loadout))
	}
	seen := make(map[Equipment]bool, len(c.Loadout))
	for i, item := range c.Loadout {
		switch {
		case item == nil:
			vb.Fieldf("Loadout", "item %d is nil", i)
		case item.Condition() == ConditionDestroyed:
			vb.Fieldf("Loadout", "item %d (%s) is destroyed", i, item.GetID())
		case item.Owner() != nil || item.Container() != nil:
			vb.Fieldf("Loadout", "item %d (%s) already has an owner", i, item.GetID())
		case seen[item]:
			vb.Fieldf("Loadout", "item %d (%s) appears twice", i, item.GetID())
		default:
			seen[item] = true
		}
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Monster is an entity with anonymous, unrestricted anchor points, a fixed
// attack damage reduced by the defender's protection, and a skin-bounded
// protection value.
type Monster struct {
	entityCore

	damage     int
	skin       SkinType
	protection int

	// capacity records the total weight of the starting loadout. The
	// monster's acceptance policy does not enforce it: monsters grab
	// whatever they can loot.
	capacity int
}

var _ Entity = (*Monster)(nil)

// NewMonster creates a monster with cfg.AnchorCount anonymous anchors and
// its starting loadout attached
func NewMonster(cfg *MonsterConfig) (*Monster, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	monster := &Monster{
		damage:     cfg.Damage,
		skin:       cfg.Skin,
		protection: cfg.Protection,
	}
	monster.entityCore = newEntityCore(monster, entityTypeMonster, cfg.Name, cfg.MaxHitPoints, cfg.Roller)
	for i := 0; i < cfg.AnchorCount; i++ {
		monster.AddAnchor("")
	}

	for _, item := range cfg.Loadout {
		monster.capacity += item.TotalWeight()
	}
	for _, item := range cfg.Loadout {
		if err := item.SetOwner(monster); err != nil {
			return nil, errors.Wrapf(err, "failed to attach loadout item %s", item.GetID())
		}
	}

	return monster, nil
}

// Damage returns the monster's attack damage before protection reduction
func (m *Monster) Damage() int {
	return m.damage
}

// Skin returns the monster's skin type
func (m *Monster) Skin() SkinType {
	return m.skin
}

// Protection returns the monster's current protection
func (m *Monster) Protection() int {
	return m.protection
}

// CarryCapacity returns the total weight of the starting loadout
func (m *Monster) CarryCapacity() int {
	return m.capacity
}

// CanAccept admits any intact item: a monster's greed is not bounded by
// its carry capacity
func (m *Monster) CanAccept(item Equipment) bool {
	return item != nil && item.Condition() != ConditionDestroyed
}

// canPlaceAt places any item at any anchor
func (m *Monster) canPlaceAt(item Equipment, anchor *AnchorPoint) bool {
	return true
}

// Hit attacks target with the monster's damage reduced, not below zero, by
// the target's protection
func (m *Monster) Hit(target Entity) (*HitOutcome, error) {
	return m.strike(target, func(defender Entity) int {
		damage := m.damage - defender.Protection()
		if damage < 0 {
			return 0
		}
		return damage
	})
}

// ValidMonsterName reports whether name is a well-formed monster name: it
// starts with an uppercase letter and contains only letters, digits,
// spaces, and apostrophes.
func ValidMonsterName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}

	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
		case unicode.IsDigit(r):
		case r == ' ' || r == '\'':
		default:
			return false
		}
	}

	return true
}
