package realm

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
)

// Base value ceilings per equipment category, in dukaten.
const (
	maxWeaponBaseValue   = 200
	maxArmorBaseValue    = 1000
	maxPurseBaseValue    = 500
	maxBackpackBaseValue = 500
)

// Equipment is the capability set shared by all equippable items. The
// interface is closed: only the four variants in this package implement it.
//
// At most one of Owner and Container is set at a time. An anchored item has
// an owner and no container; a contained item has a container and no owner,
// and its effective owner is resolved through the container chain.
type Equipment interface {
	core.Entity

	// Identifier returns the category-unique identifier issued at construction
	Identifier() int64

	// Category returns the equipment category the identifier was issued under
	Category() identity.Category

	// Weight returns the item's own weight in grams, fixed at construction
	Weight() int

	// TotalWeight returns the item's weight including anything it holds
	TotalWeight() int

	// BaseValue returns the value assigned at construction, in dukaten
	BaseValue() int

	// CurrentValue returns the item's present worth, in dukaten
	CurrentValue() int

	// Condition reports whether the item is still good
	Condition() Condition

	// Destroy marks the item destroyed. Idempotent and irreversible.
	Destroy()

	// Shiny reports whether looters prize this item over dull ones
	Shiny() bool

	// SetShiny flips the looting priority flag
	SetShiny(shiny bool)

	// Owner returns the entity holding this item in an anchor, or nil
	Owner() Entity

	// EffectiveOwner resolves the owning entity through nested backpacks
	EffectiveOwner() Entity

	// Container returns the backpack directly holding this item, or nil
	Container() *Backpack

	// SetOwner moves the item into an anchor of owner, detaching it from any
	// current backpack or owner first. A nil owner detaches the item. The
	// change is all-or-nothing: on error the graph is untouched.
	SetOwner(owner Entity) error

	// SetContainer moves the item into container's contents, detaching it
	// from any current owner or backpack first. A nil container detaches the
	// item. The change is all-or-nothing: on error the graph is untouched.
	SetContainer(container *Backpack) error

	// IsProperlyOwned reports whether the owner's anchors actually reference
	// this item, not just the item's own back-pointer
	IsProperlyOwned() bool

	// IsProperlyContained reports whether the container's contents index
	// actually lists this item
	IsProperlyContained() bool

	coreRef() *equipmentCore
}

// equipmentCore carries the state and relationship mechanics shared by all
// equipment variants. self is the variant the core is embedded in, set once
// at construction, so the shared setters can hand the full item to the
// entity and backpack primitives.
type equipmentCore struct {
	self       Equipment
	identifier int64
	category   identity.Category
	weight     int
	baseValue  int
	condition  Condition
	shiny      bool
	owner      Entity
	container  *Backpack
}

// newEquipmentCore issues or adopts an identifier and returns an initialized
// core. With a nil identifier a fresh one is generated; an explicit
// identifier is validated against the category rule and registered.
func newEquipmentCore(
	self Equipment,
	cat identity.Category,
	registry *identity.Registry,
	explicit *int64,
	weight, baseValue int,
) (equipmentCore, error) {
	var id int64
	var err error
	if explicit == nil {
		id, err = registry.Generate(cat)
	} else {
		id = *explicit
		err = registry.Register(cat, id)
	}
	if err != nil {
		return equipmentCore{}, err
	}

	return equipmentCore{
		self:       self,
		identifier: id,
		category:   cat,
		weight:     weight,
		baseValue:  baseValue,
		condition:  ConditionGood,
		shiny:      true,
	}, nil
}

// GetID returns the toolkit entity ID, category-qualified so identifiers
// from different categories never clash on the event bus
func (c *equipmentCore) GetID() string {
	return fmt.Sprintf("%s_%d", c.category, c.identifier)
}

// GetType returns the equipment category as the toolkit entity type
func (c *equipmentCore) GetType() string {
	return c.category.String()
}

// Identifier returns the category-unique identifier
func (c *equipmentCore) Identifier() int64 {
	return c.identifier
}

// Category returns the equipment category
func (c *equipmentCore) Category() identity.Category {
	return c.category
}

// Weight returns the item's own weight in grams
func (c *equipmentCore) Weight() int {
	return c.weight
}

// TotalWeight returns the item's own weight; purses and backpacks override
// this with the weight of their contents included
func (c *equipmentCore) TotalWeight() int {
	return c.weight
}

// BaseValue returns the construction-time value in dukaten
func (c *equipmentCore) BaseValue() int {
	return c.baseValue
}

// Condition reports the item's condition
func (c *equipmentCore) Condition() Condition {
	return c.condition
}

// Destroy marks the item destroyed. Safe to call repeatedly.
func (c *equipmentCore) Destroy() {
	c.condition = ConditionDestroyed
}

// Shiny reports the looting priority flag
func (c *equipmentCore) Shiny() bool {
	return c.shiny
}

// SetShiny flips the looting priority flag
func (c *equipmentCore) SetShiny(shiny bool) {
	c.shiny = shiny
}

// Owner returns the entity whose anchor holds this item, or nil when the
// item is contained or lying free
func (c *equipmentCore) Owner() Entity {
	return c.owner
}

// EffectiveOwner resolves ownership through nested backpacks: a contained
// item is possessed by whoever possesses its container
func (c *equipmentCore) EffectiveOwner() Entity {
	if c.container != nil {
		return c.container.EffectiveOwner()
	}
	return c.owner
}

// Container returns the backpack directly holding this item, or nil
func (c *equipmentCore) Container() *Backpack {
	return c.container
}

// IsProperlyOwned reports whether the owner actually anchors this item
func (c *equipmentCore) IsProperlyOwned() bool {
	return c.owner != nil && c.owner.HasItem(c.self)
}

// IsProperlyContained reports whether the container actually lists this item
func (c *equipmentCore) IsProperlyContained() bool {
	return c.container != nil && c.container.Contains(c.self)
}

// SetOwner moves the item into the first accepting anchor of owner.
//
// The acceptance policy and the anchor are checked before anything is
// mutated; past that point every step succeeds unconditionally, which is
// what makes the operation all-or-nothing.
func (c *equipmentCore) SetOwner(owner Entity) error {
	if owner != nil && c.owner == owner {
		return nil
	}

	var target *AnchorPoint
	if owner != nil {
		if !owner.CanAccept(c.self) {
			return errors.IllegalRelationshipf("%s will not accept %s", owner.Name(), c.GetID()).
				WithMeta("item", c.GetID()).
				WithMeta("entity", owner.GetID())
		}
		target = owner.peekAnchor(c.self)
		if target == nil {
			return errors.IllegalRelationshipf("no empty anchor on %s accepts %s", owner.Name(), c.GetID()).
				WithMeta("item", c.GetID()).
				WithMeta("entity", owner.GetID())
		}
	}

	if c.container != nil {
		from := c.container
		c.container = nil
		from.removeItem(c.self)
	}
	if c.owner != nil {
		from := c.owner
		c.owner = nil
		from.detach(c.self)
	}
	if owner != nil {
		c.owner = owner
		owner.attach(c.self, target)
	}
	return nil
}

// SetContainer moves the item into container's contents index.
//
// Acceptance (weight capacity, nesting cycles) is checked before anything is
// mutated, mirroring SetOwner's all-or-nothing discipline.
func (c *equipmentCore) SetContainer(container *Backpack) error {
	if c.container == container {
		return nil
	}

	if container != nil && !container.CanAccept(c.self) {
		return errors.IllegalRelationshipf("backpack %s will not accept %s", container.GetID(), c.GetID()).
			WithMeta("item", c.GetID()).
			WithMeta("backpack", container.GetID())
	}

	if c.owner != nil {
		from := c.owner
		c.owner = nil
		from.detach(c.self)
	}
	if c.container != nil {
		from := c.container
		c.container = nil
		from.removeItem(c.self)
	}
	if container != nil {
		c.container = container
		container.addItem(c.self)
	}
	return nil
}

func (c *equipmentCore) coreRef() *equipmentCore {
	return c
}
