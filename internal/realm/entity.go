package realm

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/pkg/prime"
)

// Entity type strings reported through core.Entity
const (
	entityTypeHero    = "hero"
	entityTypeMonster = "monster"
)

// percentileRollSize makes Roll draw from [1,101]; shifting down by one
// yields the uniform [0,100] range used for attack rolls and healing.
const percentileRollSize = 101

// HitOutcome describes a single resolved attack
type HitOutcome struct {
	// Roll is the attack roll, uniform in [0,100]
	Roll int

	// Connected reports whether the roll beat the defender's protection
	Connected bool

	// Damage is the hit points taken from the defender; 0 on a miss
	Damage int

	// Fatal reports whether the damage met or exceeded the defender's
	// remaining hit points
	Fatal bool
}

// Entity is a combatant carrying equipment through anchor points. The
// interface is closed: Hero and Monster are the only implementations.
type Entity interface {
	core.Entity

	// Name returns the entity's validated name
	Name() string

	// HitPoints returns the current hit points
	HitPoints() int

	// MaxHitPoints returns the hit point ceiling
	MaxHitPoints() int

	// AddHitPoints raises hit points by amount, clamped to [0, max].
	// Outside combat the result is normalized down to the nearest prime.
	AddHitPoints(amount int)

	// RemoveHitPoints lowers hit points by amount, clamped to [0, max].
	// Outside combat the result is normalized down to the nearest prime.
	RemoveHitPoints(amount int)

	// Fighting reports whether the entity is mid-combat
	Fighting() bool

	// SetFighting toggles the combat flag. Leaving combat re-applies the
	// prime normalization that was suspended during the exchange.
	SetFighting(fighting bool)

	// Protection is the threshold an attack roll must reach to connect
	Protection() int

	// CarryCapacity returns the weight the entity can carry, in grams
	CarryCapacity() int

	// CarriedWeight returns the total weight anchored on the entity,
	// including backpack contents
	CarriedWeight() int

	// CanAccept reports whether the entity's acceptance policy admits item
	CanAccept(item Equipment) bool

	// CanPlace reports whether an empty anchor accepting item exists
	CanPlace(item Equipment) bool

	// HasItem reports whether one of the entity's anchors holds item
	HasItem(item Equipment) bool

	// Anchors returns the anchor points in declaration order
	Anchors() []*AnchorPoint

	// AddAnchor appends a new empty anchor; "" makes it anonymous
	AddAnchor(name string) *AnchorPoint

	// Equipment returns the directly anchored items in anchor order
	Equipment() []Equipment

	// Hit resolves one attack against target: an attack roll against the
	// target's protection, damage on a connect, and fatality detection
	Hit(target Entity) (*HitOutcome, error)

	canPlaceAt(item Equipment, anchor *AnchorPoint) bool
	peekAnchor(item Equipment) *AnchorPoint
	attach(item Equipment, anchor *AnchorPoint)
	detach(item Equipment)
}

// entityCore carries the state and anchor mechanics shared by heroes and
// monsters. self is the variant the core is embedded in, set once at
// construction, so shared code can dispatch to variant policy.
type entityCore struct {
	self         Entity
	entityType   string
	name         string
	hitPoints    int
	maxHitPoints int
	fighting     bool
	anchors      []*AnchorPoint
	roller       dice.Roller
}

// newEntityCore initializes shared entity state. Hit points start at the
// largest prime not above the maximum, honoring the at-rest invariant from
// the first moment.
func newEntityCore(self Entity, entityType, name string, maxHitPoints int, roller dice.Roller) entityCore {
	return entityCore{
		self:         self,
		entityType:   entityType,
		name:         name,
		hitPoints:    int(prime.Floor(int64(maxHitPoints))),
		maxHitPoints: maxHitPoints,
		roller:       roller,
	}
}

// GetID returns the entity's name as its toolkit entity ID
func (c *entityCore) GetID() string {
	return c.name
}

// GetType returns the entity kind as the toolkit entity type
func (c *entityCore) GetType() string {
	return c.entityType
}

// Name returns the entity's name
func (c *entityCore) Name() string {
	return c.name
}

// HitPoints returns the current hit points
func (c *entityCore) HitPoints() int {
	return c.hitPoints
}

// MaxHitPoints returns the hit point ceiling
func (c *entityCore) MaxHitPoints() int {
	return c.maxHitPoints
}

// AddHitPoints raises hit points by amount, clamped to [0, max]
func (c *entityCore) AddHitPoints(amount int) {
	c.hitPoints = clampHitPoints(c.hitPoints+amount, c.maxHitPoints)
	c.normalizeHitPoints()
}

// RemoveHitPoints lowers hit points by amount, clamped to [0, max]
func (c *entityCore) RemoveHitPoints(amount int) {
	c.hitPoints = clampHitPoints(c.hitPoints-amount, c.maxHitPoints)
	c.normalizeHitPoints()
}

// Fighting reports whether the entity is mid-combat
func (c *entityCore) Fighting() bool {
	return c.fighting
}

// SetFighting toggles the combat flag, re-normalizing hit points when the
// entity leaves combat
func (c *entityCore) SetFighting(fighting bool) {
	c.fighting = fighting
	c.normalizeHitPoints()
}

// normalizeHitPoints floors hit points to the nearest lower prime. At-rest
// hit points are zero or prime; the normalization is suspended while the
// entity fights so damage arithmetic stays exact mid-exchange.
func (c *entityCore) normalizeHitPoints() {
	if c.fighting {
		return
	}
	c.hitPoints = int(prime.Floor(int64(c.hitPoints)))
}

// Anchors returns the anchor points in declaration order
func (c *entityCore) Anchors() []*AnchorPoint {
	out := make([]*AnchorPoint, len(c.anchors))
	copy(out, c.anchors)
	return out
}

// AddAnchor appends a new empty anchor point
func (c *entityCore) AddAnchor(name string) *AnchorPoint {
	anchor := &AnchorPoint{name: name}
	c.anchors = append(c.anchors, anchor)
	return anchor
}

// Equipment returns the directly anchored items in anchor order
func (c *entityCore) Equipment() []Equipment {
	items := make([]Equipment, 0, len(c.anchors))
	for _, anchor := range c.anchors {
		if anchor.item != nil {
			items = append(items, anchor.item)
		}
	}
	return items
}

// HasItem reports whether one of the anchors holds item
func (c *entityCore) HasItem(item Equipment) bool {
	if item == nil {
		return false
	}
	for _, anchor := range c.anchors {
		if anchor.item == item {
			return true
		}
	}
	return false
}

// CarriedWeight sums the total weight of every anchored item
func (c *entityCore) CarriedWeight() int {
	total := 0
	for _, anchor := range c.anchors {
		if anchor.item != nil {
			total += anchor.item.TotalWeight()
		}
	}
	return total
}

// CanPlace reports whether an empty anchor accepting item exists
func (c *entityCore) CanPlace(item Equipment) bool {
	return c.peekAnchor(item) != nil
}

// peekAnchor returns the first empty anchor, in declaration order, whose
// placement policy admits item, or nil when none does. Peeking never
// mutates, which lets SetOwner validate before committing.
func (c *entityCore) peekAnchor(item Equipment) *AnchorPoint {
	for _, anchor := range c.anchors {
		if anchor.item == nil && c.self.canPlaceAt(item, anchor) {
			return anchor
		}
	}
	return nil
}

// attach commits item into anchor. The item's owner back-reference must
// already point here and the anchor must be empty: violations are
// calling-sequence bugs, not runtime conditions.
func (c *entityCore) attach(item Equipment, anchor *AnchorPoint) {
	if item.Owner() != c.self {
		panic("realm: attach before the owner back-reference is set")
	}
	if anchor.item != nil {
		panic("realm: attach to an occupied anchor")
	}
	anchor.item = item
}

// detach clears the anchor holding item. The item's owner back-reference
// must already be cleared, mirroring attach.
func (c *entityCore) detach(item Equipment) {
	if item.Owner() != nil {
		panic("realm: detach while the owner back-reference is still set")
	}
	for _, anchor := range c.anchors {
		if anchor.item == item {
			anchor.item = nil
			return
		}
	}
	panic("realm: detach of an item not anchored here: " + item.GetID())
}

// strike resolves one attack: a percentile roll against the target's
// protection gates the hit, damageAgainst prices a connecting hit, and the
// damage is applied to the target. Fatality means the damage met or
// exceeded the target's remaining hit points.
func (c *entityCore) strike(target Entity, damageAgainst func(Entity) int) (*HitOutcome, error) {
	if target == nil {
		return nil, errors.NullTarget("hit requires a target")
	}

	roll, err := c.roller.Roll(percentileRollSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attack")
	}
	roll--

	outcome := &HitOutcome{Roll: roll}
	if roll < target.Protection() {
		return outcome, nil
	}

	outcome.Connected = true
	outcome.Damage = damageAgainst(target)
	preHit := target.HitPoints()
	target.RemoveHitPoints(outcome.Damage)
	outcome.Fatal = outcome.Damage >= preHit
	return outcome, nil
}

// clampHitPoints bounds hp into [0, maxHP]
func clampHitPoints(hp, maxHP int) int {
	if hp < 0 {
		return 0
	}
	if hp > maxHP {
		return maxHP
	}
	return hp
}
