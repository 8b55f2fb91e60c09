package realm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hargrim/skirmish/internal/pkg/prime"
	"github.com/hargrim/skirmish/internal/pkg/roller"
	"github.com/hargrim/skirmish/internal/testutils"
)

func TestEntity_HitPointsStartAtFlooredPrime(t *testing.T) {
	hero := testutils.CreateTestHero(roller.NewSeeded(1)) // max 40
	assert.Equal(t, 37, hero.HitPoints())
	assert.Equal(t, 40, hero.MaxHitPoints())

	monster := testutils.CreateTestMonster(roller.NewSeeded(2)) // max 30
	assert.Equal(t, 29, monster.HitPoints())
}

func TestEntity_HitPointsNormalizeOutsideCombat(t *testing.T) {
	hero := testutils.CreateTestHero(roller.NewSeeded(1)) // rests at 37

	hero.RemoveHitPoints(10) // 27, floored to 23

	assert.Equal(t, 23, hero.HitPoints())
	assert.True(t, prime.IsPrime(int64(hero.HitPoints())))
}

func TestEntity_NormalizationIsSuspendedWhileFighting(t *testing.T) {
	hero := testutils.CreateTestHero(roller.NewSeeded(1)) // rests at 37
	hero.SetFighting(true)

	hero.RemoveHitPoints(10)
	assert.Equal(t, 27, hero.HitPoints(), "mid-combat arithmetic must stay exact")

	hero.SetFighting(false)
	assert.Equal(t, 23, hero.HitPoints(), "leaving combat floors to the nearest prime")
}

func TestEntity_HitPointsClamp(t *testing.T) {
	hero := testutils.CreateTestHero(roller.NewSeeded(1))

	hero.RemoveHitPoints(1000)
	assert.Equal(t, 0, hero.HitPoints(), "zero is a legal resting value")

	hero.SetFighting(true)
	hero.AddHitPoints(1000)
	assert.Equal(t, 40, hero.HitPoints(), "clamped to max while fighting")

	hero.SetFighting(false)
	assert.Equal(t, 37, hero.HitPoints())
}

func TestEntity_AnchorsAndEquipmentOrder(t *testing.T) {
	registry := testutils.NewTestRegistry()
	hero := testutils.CreateTestHero(roller.NewSeeded(1))

	anchors := hero.Anchors()
	require.Len(t, anchors, 5)
	assert.Equal(t, "leftHand", anchors[0].Name())
	assert.Equal(t, "back", anchors[4].Name())

	weapon := testutils.CreateTestWeapon(registry)
	armor := testutils.CreateTestArmor(registry)
	require.NoError(t, armor.SetOwner(hero))
	require.NoError(t, weapon.SetOwner(hero))

	// Anchor declaration order, not equip order
	equipment := hero.Equipment()
	require.Len(t, equipment, 2)
	assert.Same(t, weapon, equipment[0])
	assert.Same(t, armor, equipment[1])

	assert.Equal(t, weapon.TotalWeight()+armor.TotalWeight(), hero.CarriedWeight())
}

func TestEntity_AddAnchorExtendsCapacityForItems(t *testing.T) {
	registry := testutils.NewTestRegistry()
	monster := testutils.CreateTestMonster(roller.NewSeeded(2)) // 4 anchors

	for i := 0; i < 4; i++ {
		require.NoError(t, testutils.CreateTestWeapon(registry).SetOwner(monster))
	}

	fifth := testutils.CreateTestWeapon(registry)
	require.Error(t, fifth.SetOwner(monster), "all anchors occupied")

	monster.AddAnchor("")
	require.NoError(t, fifth.SetOwner(monster))
	assert.Len(t, monster.Equipment(), 5)
}

func TestEntity_AnchorsCopyIsDetached(t *testing.T) {
	hero := testutils.CreateTestHero(roller.NewSeeded(1))

	anchors := hero.Anchors()
	anchors[0] = nil

	assert.NotNil(t, hero.Anchors()[0], "mutating the returned slice must not corrupt the entity")
}
