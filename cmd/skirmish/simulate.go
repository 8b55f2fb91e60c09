package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/hargrim/skirmish/internal/battle"
	"github.com/hargrim/skirmish/internal/identity"
	"github.com/hargrim/skirmish/internal/pkg/clock"
	"github.com/hargrim/skirmish/internal/pkg/idgen"
	"github.com/hargrim/skirmish/internal/pkg/roller"
	"github.com/hargrim/skirmish/internal/realm"
	"github.com/hargrim/skirmish/internal/reports"
)

// Builtin arena defaults, overridable by flags and SKIRMISH_* variables
const (
	defaultHeroName    = "Sir Roderick"
	defaultMonsterName = "Grendel"
)

var (
	flagSeed              int64
	flagHeroName          string
	flagHeroHitPoints     int
	flagStrength          float64
	flagMonsterName       string
	flagMonsterHitPoints  int
	flagMonsterDamage     int
	flagMonsterSkin       string
	flagMonsterProtection int
	flagMonsterAnchors    int
	flagQuiet             bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one battle and narrate it",
	Long: `Simulate arms a hero and a monster, fights the battle to its end, and
prints the narration, the survivor's inventory, and the filed report.`,
	RunE: runSimulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.Int64Var(&flagSeed, "seed", 0, "dice seed; 0 draws one at random (or $SKIRMISH_SEED)")
	flags.StringVar(&flagHeroName, "hero", "", "hero name (default $SKIRMISH_HERO or "+defaultHeroName+")")
	flags.IntVar(&flagHeroHitPoints, "hero-hp", 40, "hero maximum hit points")
	flags.Float64Var(&flagStrength, "strength", 15, "hero strength, to two decimals")
	flags.StringVar(&flagMonsterName, "monster", "", "monster name (default $SKIRMISH_MONSTER or "+defaultMonsterName+")")
	flags.IntVar(&flagMonsterHitPoints, "monster-hp", 30, "monster maximum hit points")
	flags.IntVar(&flagMonsterDamage, "monster-damage", 49, "monster damage, a positive multiple of 7 up to 100")
	flags.StringVar(&flagMonsterSkin, "monster-skin", "scales", "monster skin: hide, scales or stone")
	flags.IntVar(&flagMonsterProtection, "monster-protection", 20, "monster protection, up to the skin's maximum")
	flags.IntVar(&flagMonsterAnchors, "monster-anchors", 3, "anchor points on the monster")
	flags.BoolVar(&flagQuiet, "quiet", false, "suppress the turn-by-turn narration")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	seed, err := resolveSeed()
	if err != nil {
		return err
	}

	r := roller.NewSeeded(seed)
	registry, err := identity.New(&identity.Config{Roller: r})
	if err != nil {
		return fmt.Errorf("failed to set up the identity registry: %w", err)
	}

	hero, err := buildHero(registry, r)
	if err != nil {
		return err
	}
	monster, err := buildMonster(registry, r)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	if !flagQuiet {
		newNarrator(out).subscribe(bus)
	}

	repo := reports.NewInMemory()
	b, err := battle.New(&battle.Config{
		First:   hero,
		Second:  monster,
		Roller:  r,
		Bus:     bus,
		IDGen:   idgen.NewUUID("battle"),
		Reports: repo,
		Clock:   clock.New(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Seed %d: %s (%d hp) versus %s (%d hp).\n\n",
		seed, hero.Name(), hero.HitPoints(), monster.Name(), monster.HitPoints())

	result, err := b.Fight(cmd.Context())
	if err != nil {
		return err
	}

	printSummary(cmd.Context(), out, result, repo)
	return nil
}

// resolveSeed picks the dice seed: the --seed flag, then $SKIRMISH_SEED,
// then a random draw.
func resolveSeed() (int64, error) {
	if flagSeed != 0 {
		return flagSeed, nil
	}
	if raw := os.Getenv("SKIRMISH_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("SKIRMISH_SEED must be an integer: %w", err)
		}
		return seed, nil
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to draw a seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// buildHero forges the hero and a standard kit: a longsword, worn bronze
// armor, a purse of dukaten, and a backpack holding a spare dagger.
func buildHero(registry *identity.Registry, r dice.Roller) (*realm.Hero, error) {
	name := flagHeroName
	if name == "" {
		name = envOrDefault("SKIRMISH_HERO", defaultHeroName)
	}

	hero, err := realm.NewHero(&realm.HeroConfig{
		Name:         name,
		MaxHitPoints: flagHeroHitPoints,
		Strength:     flagStrength,
		Roller:       r,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create the hero: %w", err)
	}

	sword, err := realm.NewWeapon(&realm.WeaponConfig{
		Registry:  registry,
		Weight:    1500,
		BaseValue: 30,
		Damage:    14,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to forge the hero's sword: %w", err)
	}
	if err := sword.SetOwner(hero); err != nil {
		return nil, fmt.Errorf("failed to arm the hero: %w", err)
	}

	armor, err := realm.NewArmor(&realm.ArmorConfig{
		Registry:  registry,
		Weight:    5000,
		BaseValue: 100,
		Type:      realm.ArmorTypeBronze,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to forge the hero's armor: %w", err)
	}
	if err := armor.SetCurrentProtection(35); err != nil {
		return nil, err
	}
	if err := armor.SetOwner(hero); err != nil {
		return nil, fmt.Errorf("failed to dress the hero: %w", err)
	}

	purse, err := realm.NewPurse(&realm.PurseConfig{
		Registry:  registry,
		Weight:    100,
		BaseValue: 50,
		Capacity:  500,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sew the hero's purse: %w", err)
	}
	if err := purse.AddToContents(120); err != nil {
		return nil, err
	}
	if err := purse.SetOwner(hero); err != nil {
		return nil, fmt.Errorf("failed to hang the purse on the hero's belt: %w", err)
	}

	backpack, err := realm.NewBackpack(&realm.BackpackConfig{
		Registry:  registry,
		Weight:    800,
		BaseValue: 120,
		Capacity:  10000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stitch the hero's backpack: %w", err)
	}
	if err := backpack.SetOwner(hero); err != nil {
		return nil, fmt.Errorf("failed to shoulder the backpack: %w", err)
	}

	dagger, err := realm.NewWeapon(&realm.WeaponConfig{
		Registry:  registry,
		Weight:    600,
		BaseValue: 14,
		Damage:    7,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to forge the spare dagger: %w", err)
	}
	if err := dagger.SetContainer(backpack); err != nil {
		return nil, fmt.Errorf("failed to pack the spare dagger: %w", err)
	}

	return hero, nil
}

// buildMonster creates the monster and its hoard: a shiny glaive worth
// claiming and a dull tin armor that usually ends up shattered.
func buildMonster(registry *identity.Registry, r dice.Roller) (*realm.Monster, error) {
	name := flagMonsterName
	if name == "" {
		name = envOrDefault("SKIRMISH_MONSTER", defaultMonsterName)
	}

	glaive, err := realm.NewWeapon(&realm.WeaponConfig{
		Registry:  registry,
		Weight:    2200,
		BaseValue: 40,
		Damage:    21,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to forge the monster's glaive: %w", err)
	}

	tin, err := realm.NewArmor(&realm.ArmorConfig{
		Registry:  registry,
		Weight:    3000,
		BaseValue: 60,
		Type:      realm.ArmorTypeTin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to forge the monster's armor: %w", err)
	}
	tin.SetShiny(false)

	monster, err := realm.NewMonster(&realm.MonsterConfig{
		Name:         name,
		MaxHitPoints: flagMonsterHitPoints,
		Damage:       flagMonsterDamage,
		Skin:         realm.SkinType(flagMonsterSkin),
		Protection:   flagMonsterProtection,
		AnchorCount:  flagMonsterAnchors,
		Loadout:      []realm.Equipment{glaive, tin},
		Roller:       r,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create the monster: %w", err)
	}

	return monster, nil
}

// printSummary prints the survivor's standing, its spoils, and the filed
// reports.
func printSummary(ctx context.Context, out io.Writer, result *battle.Result, repo reports.Repository) {
	fmt.Fprintln(out)
	if result.Healed > 0 {
		fmt.Fprintf(out, "%s healed %d after the kill.\n", result.Winner.Name(), result.Healed)
	}
	fmt.Fprintf(out, "%s stands at %d hit points; %s lies at %d.\n",
		result.Winner.Name(), result.Winner.HitPoints(),
		result.Loser.Name(), result.Loser.HitPoints())

	fmt.Fprintf(out, "\n%s carries %dg of %dg:\n", result.Winner.Name(),
		result.Winner.CarriedWeight(), result.Winner.CarryCapacity())
	for _, item := range result.Winner.Equipment() {
		fmt.Fprintf(out, "  %-16s %6dg %5d dukaten\n",
			item.GetID(), item.TotalWeight(), item.CurrentValue())
	}

	listOut, err := repo.List(ctx, &reports.ListInput{})
	if err != nil {
		fmt.Fprintf(out, "\nFailed to list reports: %v\n", err)
		return
	}
	fmt.Fprintln(out)
	for _, report := range listOut.Reports {
		fmt.Fprintf(out, "Report %s: %s versus %s, won by %s in %d turns at %s.\n",
			report.ID, report.First, report.Second, report.Winner, report.Turns,
			report.ResolvedAt.Format(time.RFC3339))
	}
}

// envOrDefault returns the environment value for key, or fallback when unset
func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
