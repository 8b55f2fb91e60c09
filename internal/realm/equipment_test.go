package realm_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/identity"
	"github.com/hargrim/skirmish/internal/pkg/roller"
	"github.com/hargrim/skirmish/internal/realm"
	"github.com/hargrim/skirmish/internal/testutils"
)

type OwnershipGraphTestSuite struct {
	suite.Suite
	registry *identity.Registry
	hero     *realm.Hero
	monster  *realm.Monster
}

func (s *OwnershipGraphTestSuite) SetupTest() {
	s.registry = testutils.NewTestRegistry()
	s.hero = testutils.CreateTestHero(roller.NewSeeded(1))
	s.monster = testutils.CreateTestMonster(roller.NewSeeded(2))
}

// Two instances must be able to hold two distinct owners at the same time.
// Guards against ownership state leaking across instances.
func (s *OwnershipGraphTestSuite) TestDistinctInstancesHoldDistinctOwners() {
	first := testutils.CreateTestWeapon(s.registry)
	second := testutils.CreateTestWeapon(s.registry)

	s.Require().NoError(first.SetOwner(s.hero))
	s.Require().NoError(second.SetOwner(s.monster))

	s.Same(s.hero, first.Owner())
	s.Same(s.monster, second.Owner())
	s.True(s.hero.HasItem(first))
	s.False(s.hero.HasItem(second))
	s.True(s.monster.HasItem(second))
	s.False(s.monster.HasItem(first))
}

func (s *OwnershipGraphTestSuite) TestOwnershipSymmetry() {
	weapon := testutils.CreateTestWeapon(s.registry)

	s.Require().NoError(weapon.SetOwner(s.hero))

	s.Same(s.hero, weapon.Owner())
	s.True(s.hero.HasItem(weapon))
	s.True(weapon.IsProperlyOwned())

	s.Require().NoError(weapon.SetOwner(nil))

	s.Nil(weapon.Owner())
	s.False(s.hero.HasItem(weapon))
	s.False(weapon.IsProperlyOwned())
}

func (s *OwnershipGraphTestSuite) TestBackpackSymmetry() {
	backpack := testutils.CreateTestBackpack(s.registry)
	weapon := testutils.CreateTestWeapon(s.registry)

	s.Require().NoError(weapon.SetContainer(backpack))

	s.Same(backpack, weapon.Container())
	s.True(backpack.Contains(weapon))
	s.True(weapon.IsProperlyContained())

	s.Require().NoError(weapon.SetContainer(nil))

	s.Nil(weapon.Container())
	s.False(backpack.Contains(weapon))
	s.False(weapon.IsProperlyContained())
}

func (s *OwnershipGraphTestSuite) TestMoveBetweenEntities() {
	weapon := testutils.CreateTestWeapon(s.registry)
	s.Require().NoError(weapon.SetOwner(s.hero))

	s.Require().NoError(weapon.SetOwner(s.monster))

	s.Same(s.monster, weapon.Owner())
	s.True(s.monster.HasItem(weapon))
	s.False(s.hero.HasItem(weapon))
	s.Nil(s.hero.LeftHand(), "hand mirror should clear when the weapon leaves")
}

func (s *OwnershipGraphTestSuite) TestMoveFromBackpackToAnchor() {
	backpack := testutils.CreateTestBackpack(s.registry)
	weapon := testutils.CreateTestWeapon(s.registry)
	s.Require().NoError(backpack.SetOwner(s.hero))
	s.Require().NoError(weapon.SetContainer(backpack))

	s.Nil(weapon.Owner())
	s.Same(s.hero, weapon.EffectiveOwner())

	// Pull the weapon out of the backpack into a hand
	s.Require().NoError(weapon.SetOwner(s.hero))

	s.Same(s.hero, weapon.Owner())
	s.Nil(weapon.Container())
	s.False(backpack.Contains(weapon))
	s.Same(weapon, s.hero.LeftHand())
}

func (s *OwnershipGraphTestSuite) TestNoQualifyingAnchorLeavesGraphUntouched() {
	// Weapons can go to the hands or the back; fill all three.
	for i := 0; i < 3; i++ {
		s.Require().NoError(testutils.CreateTestWeapon(s.registry).SetOwner(s.hero))
	}
	fourth := testutils.CreateTestWeapon(s.registry)
	s.Require().NoError(fourth.SetOwner(s.monster))

	err := fourth.SetOwner(s.hero)

	s.Require().Error(err)
	s.True(errors.IsIllegalRelationship(err))
	s.Same(s.monster, fourth.Owner(), "failed move must not detach the item")
	s.True(s.monster.HasItem(fourth))
	s.False(s.hero.HasItem(fourth))
}

func (s *OwnershipGraphTestSuite) TestArmorPrefersBodyAnchor() {
	first := testutils.CreateTestArmor(s.registry)
	second := testutils.CreateTestArmor(s.registry)

	s.Require().NoError(first.SetOwner(s.hero))
	s.Same(first, s.hero.EquippedArmor())

	// Body is taken; the second armor lands on the back
	s.Require().NoError(second.SetOwner(s.hero))
	s.Same(first, s.hero.EquippedArmor())
	s.True(s.hero.HasItem(second))

	third := testutils.CreateTestArmor(s.registry)
	err := third.SetOwner(s.hero)

	s.Require().Error(err)
	s.True(errors.IsIllegalRelationship(err))
	s.Nil(third.Owner())
}

func (s *OwnershipGraphTestSuite) TestPurseLimitCountsThroughBackpacks() {
	backpack := testutils.CreateTestBackpack(s.registry)
	s.Require().NoError(backpack.SetOwner(s.hero))

	stowed := testutils.CreateTestPurse(s.registry)
	s.Require().NoError(stowed.SetContainer(backpack))

	// The stowed purse is effectively the hero's, so a second one is
	// over the limit even though the belt anchor is still empty.
	second := testutils.CreateTestPurse(s.registry)
	err := second.SetOwner(s.hero)

	s.Require().Error(err)
	s.True(errors.IsIllegalRelationship(err))

	// Moving the stowed purse itself onto the belt stays legal: it does
	// not count against itself.
	s.Require().NoError(stowed.SetOwner(s.hero))
	s.Same(s.hero, stowed.Owner())
	s.False(backpack.Contains(stowed))
}

func (s *OwnershipGraphTestSuite) TestCarryCapacityBoundary() {
	weakling, err := realm.NewHero(&realm.HeroConfig{
		Name:         "Pip",
		MaxHitPoints: 20,
		Strength:     1, // capacity 2000 grams
		Roller:       roller.NewSeeded(3),
	})
	s.Require().NoError(err)

	heavy := testutils.CreateTestWeapon(s.registry) // 1500 grams
	s.Require().NoError(heavy.SetOwner(weakling))

	exact, err := realm.NewWeapon(&realm.WeaponConfig{
		Registry: s.registry,
		Weight:   500,
		Damage:   7,
	})
	s.Require().NoError(err)
	s.Require().NoError(exact.SetOwner(weakling), "exact fit must be accepted")

	over, err := realm.NewWeapon(&realm.WeaponConfig{
		Registry: s.registry,
		Weight:   1,
		Damage:   7,
	})
	s.Require().NoError(err)
	err = over.SetOwner(weakling)

	s.Require().Error(err)
	s.True(errors.IsIllegalRelationship(err))
	s.Nil(over.Owner())
}

func (s *OwnershipGraphTestSuite) TestRehomingSkipsCapacityCheck() {
	weakling, err := realm.NewHero(&realm.HeroConfig{
		Name:         "Pip",
		MaxHitPoints: 20,
		Strength:     0.5, // capacity 1000 grams
		Roller:       roller.NewSeeded(3),
	})
	s.Require().NoError(err)

	backpack := testutils.CreateTestBackpack(s.registry) // 800 grams empty
	s.Require().NoError(backpack.SetOwner(weakling))

	// Stowing checks the backpack's capacity, not the carrier's, so the
	// hero can end up over capacity through the container.
	weapon := testutils.CreateTestWeapon(s.registry)
	s.Require().NoError(weapon.SetContainer(backpack))
	s.Greater(weakling.CarriedWeight(), weakling.CarryCapacity())

	// Re-homing something the hero already effectively holds must not
	// fail the capacity check.
	s.Require().NoError(weapon.SetOwner(weakling))
	s.Same(weakling, weapon.Owner())
}

func (s *OwnershipGraphTestSuite) TestEffectiveOwnerThroughNesting() {
	outer := testutils.CreateTestBackpack(s.registry)
	inner := testutils.CreateTestBackpack(s.registry)
	purse := testutils.CreateTestPurse(s.registry)

	s.Require().NoError(outer.SetOwner(s.hero))
	s.Require().NoError(inner.SetContainer(outer))
	s.Require().NoError(purse.SetContainer(inner))

	s.Nil(purse.Owner())
	s.Same(s.hero, purse.EffectiveOwner())
	s.Same(s.hero, inner.EffectiveOwner())
	s.False(s.hero.HasItem(purse), "nested items are not anchored directly")
}

func (s *OwnershipGraphTestSuite) TestBackpackNestingRejectsCycles() {
	outer := testutils.CreateTestBackpack(s.registry)
	inner := testutils.CreateTestBackpack(s.registry)

	err := outer.SetContainer(outer)
	s.Require().Error(err, "a backpack cannot contain itself")
	s.True(errors.IsIllegalRelationship(err))

	s.Require().NoError(inner.SetContainer(outer))
	err = outer.SetContainer(inner)

	s.Require().Error(err, "a backpack cannot contain its own container")
	s.True(errors.IsIllegalRelationship(err))
	s.True(outer.Contains(inner), "failed nesting must not disturb the graph")
	s.Nil(outer.Container())
}

func (s *OwnershipGraphTestSuite) TestDestroyedItemsAreNotAccepted() {
	weapon := testutils.CreateTestWeapon(s.registry)
	backpack := testutils.CreateTestBackpack(s.registry)
	weapon.Destroy()

	err := weapon.SetOwner(s.hero)
	s.Require().Error(err)
	s.True(errors.IsIllegalRelationship(err))

	err = weapon.SetContainer(backpack)
	s.Require().Error(err)
	s.True(errors.IsIllegalRelationship(err))
}

func (s *OwnershipGraphTestSuite) TestSameOwnerIsANoOp() {
	weapon := testutils.CreateTestWeapon(s.registry)
	s.Require().NoError(weapon.SetOwner(s.hero))
	s.Same(weapon, s.hero.LeftHand())

	s.Require().NoError(weapon.SetOwner(s.hero))

	s.Same(weapon, s.hero.LeftHand(), "re-setting the same owner must not move the item")
	s.Nil(s.hero.RightHand())
}

func (s *OwnershipGraphTestSuite) TestSetOwnerNilFreesContainedItem() {
	backpack := testutils.CreateTestBackpack(s.registry)
	purse := testutils.CreateTestPurse(s.registry)
	s.Require().NoError(purse.SetContainer(backpack))

	s.Require().NoError(purse.SetOwner(nil))

	s.Nil(purse.Owner())
	s.Nil(purse.Container())
	s.False(backpack.Contains(purse))
}

func TestOwnershipGraphSuite(t *testing.T) {
	suite.Run(t, new(OwnershipGraphTestSuite))
}
