package testutils

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/identity"
	"github.com/hargrim/skirmish/internal/pkg/roller"
	"github.com/hargrim/skirmish/internal/realm"
)

// Default fixture names
const (
	TestHeroName    = "Sir Lancelot"
	TestMonsterName = "Grendel"

	registrySeed = 42
)

// NewTestRegistry returns an identity registry backed by a seeded roller,
// so fixture identifiers are stable across runs
func NewTestRegistry() *identity.Registry {
	registry, err := identity.New(&identity.Config{
		Roller: roller.NewSeeded(registrySeed),
	})
	if err != nil {
		panic(err)
	}
	return registry
}

// CreateTestHero creates a hero with sensible defaults: 40 max hit points
// (so it rests at 37) and strength 15.00 (carry capacity 30000 grams).
func CreateTestHero(r dice.Roller) *realm.Hero {
	hero, err := realm.NewHero(&realm.HeroConfig{
		Name:         TestHeroName,
		MaxHitPoints: 40,
		Strength:     15,
		Roller:       r,
	})
	if err != nil {
		panic(err)
	}
	return hero
}

// CreateTestMonster creates a scales-skinned monster with sensible
// defaults and the given loadout attached. It always has at least four
// anchors so there is room to loot.
func CreateTestMonster(r dice.Roller, loadout ...realm.Equipment) *realm.Monster {
	anchors := 4
	if len(loadout) > anchors {
		anchors = len(loadout)
	}
	monster, err := realm.NewMonster(&realm.MonsterConfig{
		Name:         TestMonsterName,
		MaxHitPoints: 30,
		Damage:       14,
		Skin:         realm.SkinTypeScales,
		Protection:   20,
		AnchorCount:  anchors,
		Loadout:      loadout,
		Roller:       r,
	})
	if err != nil {
		panic(err)
	}
	return monster
}

// CreateTestWeapon creates a weapon with damage 14 and weight 1500 grams
func CreateTestWeapon(registry *identity.Registry) *realm.Weapon {
	weapon, err := realm.NewWeapon(&realm.WeaponConfig{
		Registry:  registry,
		Weight:    1500,
		BaseValue: 30,
		Damage:    14,
	})
	if err != nil {
		panic(err)
	}
	return weapon
}

// CreateTestArmor creates a bronze armor at its full protection of 90
func CreateTestArmor(registry *identity.Registry) *realm.Armor {
	armor, err := realm.NewArmor(&realm.ArmorConfig{
		Registry:  registry,
		Weight:    5000,
		BaseValue: 100,
		Type:      realm.ArmorTypeBronze,
	})
	if err != nil {
		panic(err)
	}
	return armor
}

// CreateTestPurse creates an empty purse holding up to 500 dukaten
func CreateTestPurse(registry *identity.Registry) *realm.Purse {
	purse, err := realm.NewPurse(&realm.PurseConfig{
		Registry:  registry,
		Weight:    100,
		BaseValue: 50,
		Capacity:  500,
	})
	if err != nil {
		panic(err)
	}
	return purse
}

// CreateTestBackpack creates a backpack holding up to 10000 grams
func CreateTestBackpack(registry *identity.Registry) *realm.Backpack {
	backpack, err := realm.NewBackpack(&realm.BackpackConfig{
		Registry:  registry,
		Weight:    800,
		BaseValue: 120,
		Capacity:  10000,
	})
	if err != nil {
		panic(err)
	}
	return backpack
}
