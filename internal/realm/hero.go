package realm

import (
	"math"
	"unicode"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
)

// Hero anchor names. Declaration order matters: anchors are tried in this
// order when placing an item, so the catch-all back anchor comes last and
// category-specific anchors win.
const (
	AnchorLeftHand  = "leftHand"
	AnchorRightHand = "rightHand"
	AnchorBody      = "body"
	AnchorBelt      = "belt"
	AnchorBack      = "back"
)

const (
	heroBaseProtection = 10
	heroMaxArmors      = 2
	heroMaxPurses      = 1
	heroMaxApostrophes = 2

	// heroCapacityFactor converts strength hundredths into carry capacity
	// in grams: 20 grams per hundredth of a strength point.
	heroCapacityFactor = 20
)

// HeroConfig holds the dependencies and stats needed to create a hero
type HeroConfig struct {
	Name         string
	MaxHitPoints int

	// Strength is the hero's intrinsic strength. It is kept to two
	// decimal places; further digits are rounded away.
	Strength float64

	Roller dice.Roller
}

// Validate ensures the config is complete and the stats are legal
func (c *HeroConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Name == "" {
		vb.RequiredField("Name")
	} else if !ValidHeroName(c.Name) {
		vb.Fieldf("Name", "%q is not a valid hero name", c.Name)
	}
	if c.MaxHitPoints < 1 {
		vb.Fieldf("MaxHitPoints", "must be positive, got %d", c.MaxHitPoints)
	}
	if c.Strength <= 0 {
		vb.Fieldf("Strength", "must be positive, got %.2f", c.Strength)
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Hero is an entity with positional equipment slots, strength-derived
// carry capacity and attack damage, and post-kill healing.
type Hero struct {
	entityCore

	strengthHundredths int

	// Mirrors of the hand and body anchors, kept in sync by attach and
	// detach so damage and protection queries do not scan anchors.
	leftHand  *Weapon
	rightHand *Weapon
	bodyArmor *Armor
}

var _ Entity = (*Hero)(nil)

// NewHero creates a hero with the standard five anchor points and hit
// points starting at the largest prime not above the maximum
func NewHero(cfg *HeroConfig) (*Hero, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hero := &Hero{
		strengthHundredths: int(math.Round(cfg.Strength * 100)),
	}
	hero.entityCore = newEntityCore(hero, entityTypeHero, cfg.Name, cfg.MaxHitPoints, cfg.Roller)
	for _, name := range []string{AnchorLeftHand, AnchorRightHand, AnchorBody, AnchorBelt, AnchorBack} {
		hero.AddAnchor(name)
	}

	return hero, nil
}

// Strength returns the hero's strength to two decimal places
func (h *Hero) Strength() float64 {
	return float64(h.strengthHundredths) / 100
}

// CarryCapacity derives the weight the hero can carry from strength
func (h *Hero) CarryCapacity() int {
	return h.strengthHundredths * heroCapacityFactor
}

// Protection returns the hero's base protection plus the current
// protection of the armor worn on the body anchor, if any
func (h *Hero) Protection() int {
	protection := heroBaseProtection
	if h.bodyArmor != nil {
		protection += h.bodyArmor.CurrentProtection()
	}
	return protection
}

// Damage computes the hero's attack damage from strength and wielded
// weapons: floor((strength + weapon damages - 10) / 2), never negative.
// The arithmetic runs in strength hundredths to keep the flooring exact.
func (h *Hero) Damage() int {
	hundredths := h.strengthHundredths - 1000
	if h.leftHand != nil {
		hundredths += 100 * h.leftHand.Damage()
	}
	if h.rightHand != nil {
		hundredths += 100 * h.rightHand.Damage()
	}
	if hundredths < 0 {
		return 0
	}
	return hundredths / 200
}

// LeftHand returns the weapon wielded in the left hand, if any
func (h *Hero) LeftHand() *Weapon {
	return h.leftHand
}

// RightHand returns the weapon wielded in the right hand, if any
func (h *Hero) RightHand() *Weapon {
	return h.rightHand
}

// EquippedArmor returns the armor worn on the body anchor, if any
func (h *Hero) EquippedArmor() *Armor {
	return h.bodyArmor
}

// CanAccept applies the hero's acceptance policy: the item must be intact,
// must fit the remaining carry capacity unless the hero already effectively
// holds it, and must not push the hero past two armors or one purse. The
// category counts look through carried backpacks.
func (h *Hero) CanAccept(item Equipment) bool {
	if item == nil || item.Condition() == ConditionDestroyed {
		return false
	}
	if item.EffectiveOwner() != h && h.CarriedWeight()+item.TotalWeight() > h.CarryCapacity() {
		return false
	}
	switch item.Category() {
	case identity.CategoryArmor:
		return h.countCategory(identity.CategoryArmor, item) < heroMaxArmors
	case identity.CategoryPurse:
		return h.countCategory(identity.CategoryPurse, item) < heroMaxPurses
	default:
		return true
	}
}

// countCategory counts items of category held by the hero, directly
// anchored or nested in carried backpacks, skipping excluded so an item
// being re-homed does not count against itself.
func (h *Hero) countCategory(category identity.Category, excluded Equipment) int {
	count := 0
	var walk func(items []Equipment)
	walk = func(items []Equipment) {
		for _, item := range items {
			if item == excluded {
				continue
			}
			if item.Category() == category {
				count++
			}
			if backpack, ok := item.(*Backpack); ok {
				walk(backpack.Contents())
			}
		}
	}
	walk(h.Equipment())
	return count
}

// canPlaceAt enforces the hero's positional policy: weapons only in hands,
// armor only on the body, purses only on the belt, anything on the back or
// on anchors added later.
func (h *Hero) canPlaceAt(item Equipment, anchor *AnchorPoint) bool {
	switch anchor.Name() {
	case AnchorLeftHand, AnchorRightHand:
		return item.Category() == identity.CategoryWeapon
	case AnchorBody:
		return item.Category() == identity.CategoryArmor
	case AnchorBelt:
		return item.Category() == identity.CategoryPurse
	default:
		return true
	}
}

func (h *Hero) attach(item Equipment, anchor *AnchorPoint) {
	h.entityCore.attach(item, anchor)
	h.syncEquipped()
}

func (h *Hero) detach(item Equipment) {
	h.entityCore.detach(item)
	h.syncEquipped()
}

// syncEquipped refreshes the hand and body mirrors from the anchors
func (h *Hero) syncEquipped() {
	h.leftHand = nil
	h.rightHand = nil
	h.bodyArmor = nil
	for _, anchor := range h.anchors {
		switch anchor.name {
		case AnchorLeftHand:
			if weapon, ok := anchor.item.(*Weapon); ok {
				h.leftHand = weapon
			}
		case AnchorRightHand:
			if weapon, ok := anchor.item.(*Weapon); ok {
				h.rightHand = weapon
			}
		case AnchorBody:
			if armor, ok := anchor.item.(*Armor); ok {
				h.bodyArmor = armor
			}
		}
	}
}

// Hit attacks target with the hero's full attack damage
func (h *Hero) Hit(target Entity) (*HitOutcome, error) {
	return h.strike(target, func(Entity) int {
		return h.Damage()
	})
}

// HealAfterKill restores a random share of the hero's missing hit points:
// floor(missing * pct / 100) with pct uniform in [0,100]. It returns the
// amount healed.
func (h *Hero) HealAfterKill() (int, error) {
	missing := h.maxHitPoints - h.hitPoints
	if missing <= 0 {
		return 0, nil
	}

	roll, err := h.roller.Roll(percentileRollSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll healing")
	}

	healed := missing * (roll - 1) / 100
	h.AddHitPoints(healed)
	return healed, nil
}

// ValidHeroName reports whether name is a well-formed hero name: it starts
// with an uppercase letter and contains only letters, spaces, at most two
// apostrophes, and colons that are directly followed by a space.
func ValidHeroName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}

	apostrophes := 0
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r):
		case r == ' ':
		case r == '\'':
			apostrophes++
			if apostrophes > heroMaxApostrophes {
				return false
			}
		case r == ':':
			if i+1 >= len(runes) || runes[i+1] != ' ' {
				return false
			}
		default:
			return false
		}
	}

	return true
}
