// Package battle resolves fights between two entities.
//
// A battle is a single-use state machine: a coin flip picks the opening
// attacker, strikes alternate until one side runs out of hit points, the
// winner heals (heroes only) and picks over the fallen's equipment, and
// the outcome lands in a report repository. Every step is announced on an
// event bus so a narrator can follow along.
package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/pkg/clock"
	"github.com/hargrim/skirmish/internal/pkg/idgen"
	"github.com/hargrim/skirmish/internal/realm"
	"github.com/hargrim/skirmish/internal/reports"
)

// State tracks a battle through its lifecycle
type State string

// Battle lifecycle states
const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateResolved   State = "resolved"
)

// coinFlipSize gives the opening roll two outcomes: 1 lets First strike
// first, 2 hands the opening strike to Second.
const coinFlipSize = 2

// Config holds the participants and collaborators of a battle
type Config struct {
	First   realm.Entity
	Second  realm.Entity
	Roller  dice.Roller
	Bus     events.EventBus
	IDGen   idgen.Generator
	Reports reports.Repository
	Clock   clock.Clock
}

// Validate checks the battle has two distinct living participants and all
// of its collaborators
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch {
	case c.First == nil:
		vb.RequiredField("First")
	case c.First.HitPoints() == 0:
		vb.Fieldf("First", "%s cannot fight with 0 hit points", c.First.Name())
	}
	switch {
	case c.Second == nil:
		vb.RequiredField("Second")
	case c.Second.HitPoints() == 0:
		vb.Fieldf("Second", "%s cannot fight with 0 hit points", c.Second.Name())
	}
	if c.First != nil && c.First == c.Second {
		vb.Field("Second", "cannot fight itself")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	if c.Reports == nil {
		vb.RequiredField("Reports")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Battle drives one fight from the opening coin flip to the saved report.
// It is single-use: Fight runs at most once per battle.
type Battle struct {
	id      string
	first   realm.Entity
	second  realm.Entity
	roller  dice.Roller
	bus     events.EventBus
	reports reports.Repository
	clock   clock.Clock
	state   State
}

// New creates a battle between cfg.First and cfg.Second
func New(cfg *Config) (*Battle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Battle{
		id:      cfg.IDGen.Generate(),
		first:   cfg.First,
		second:  cfg.Second,
		roller:  cfg.Roller,
		bus:     cfg.Bus,
		reports: cfg.Reports,
		clock:   cfg.Clock,
		state:   StateNotStarted,
	}, nil
}

// ID returns the identifier the battle's report is filed under
func (b *Battle) ID() string {
	return b.id
}

// State reports where the battle is in its lifecycle
func (b *Battle) State() State {
	return b.state
}

// Result summarizes a resolved battle
type Result struct {
	BattleID string
	Winner   realm.Entity
	Loser    realm.Entity
	Turns    int
	Healed   int
}

// Fight runs the battle to its resolution. It blocks until one side's hit
// points reach zero, heals the winner (heroes only), lets the winner loot
// the fallen, saves the report, and returns both participants to their
// at-rest stance. A second call fails with FailedPrecondition.
func (b *Battle) Fight(ctx context.Context) (*Result, error) {
	if b.state != StateNotStarted {
		return nil, errors.FailedPreconditionf("battle %s has already been fought", b.id)
	}

	flip, err := b.roller.Roll(coinFlipSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to flip for the opening strike")
	}
	attacker, defender := b.first, b.second
	if flip == 2 {
		attacker, defender = defender, attacker
	}

	b.state = StateInProgress
	startedAt := b.clock.Now()
	b.first.SetFighting(true)
	b.second.SetFighting(true)

	slog.Info("Battle started",
		"battle_id", b.id,
		"first", b.first.Name(),
		"second", b.second.Name(),
		"opening_strike", attacker.Name(),
	)
	b.publish(ctx, EventStarted, attacker, defender, nil)

	turns := 0
	for {
		turns++

		outcome, err := attacker.Hit(defender)
		if err != nil {
			b.breakOff()
			return nil, errors.Wrapf(err, "turn %d: %s could not strike", turns, attacker.Name())
		}

		if !outcome.Connected {
			b.publish(ctx, EventMissed, attacker, defender, map[string]interface{}{
				ContextKeyTurn: turns,
				ContextKeyRoll: outcome.Roll,
			})
			attacker, defender = defender, attacker
			continue
		}

		b.publish(ctx, EventHit, attacker, defender, map[string]interface{}{
			ContextKeyTurn:      turns,
			ContextKeyRoll:      outcome.Roll,
			ContextKeyDamage:    outcome.Damage,
			ContextKeyFatal:     outcome.Fatal,
			ContextKeyHitPoints: defender.HitPoints(),
		})

		if outcome.Fatal {
			break
		}
		attacker, defender = defender, attacker
	}

	winner, loser := attacker, defender

	healed := 0
	if hero, ok := winner.(*realm.Hero); ok {
		healed, err = hero.HealAfterKill()
		if err != nil {
			b.breakOff()
			return nil, errors.Wrap(err, "failed to roll the victory heal")
		}
		if healed > 0 {
			b.publish(ctx, EventHealed, winner, loser, map[string]interface{}{
				ContextKeyHealed:    healed,
				ContextKeyHitPoints: winner.HitPoints(),
			})
		}
	}

	b.lootFallen(ctx, winner, loser)

	b.first.SetFighting(false)
	b.second.SetFighting(false)
	b.state = StateResolved

	report := &reports.Report{
		ID:         b.id,
		First:      b.first.Name(),
		Second:     b.second.Name(),
		Winner:     winner.Name(),
		Turns:      turns,
		StartedAt:  startedAt,
		ResolvedAt: b.clock.Now(),
	}
	if _, err := b.reports.Save(ctx, &reports.SaveInput{Report: report}); err != nil {
		return nil, errors.Wrapf(err, "failed to save the report for battle %s", b.id)
	}

	slog.Info("Battle resolved",
		"battle_id", b.id,
		"winner", winner.Name(),
		"loser", loser.Name(),
		"turns", turns,
	)
	b.publish(ctx, EventResolved, winner, loser, map[string]interface{}{
		ContextKeyTurns: turns,
	})

	return &Result{
		BattleID: b.id,
		Winner:   winner,
		Loser:    loser,
		Turns:    turns,
		Healed:   healed,
	}, nil
}

// breakOff abandons a battle after a mid-exchange failure, returning both
// participants to their at-rest stance. The battle stays InProgress so it
// cannot be restarted.
func (b *Battle) breakOff() {
	b.first.SetFighting(false)
	b.second.SetFighting(false)
}
