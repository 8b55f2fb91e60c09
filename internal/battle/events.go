package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus while a battle runs. Source and Target
// are the attacker and defender for combat events; loot events target the
// item being picked over.
const (
	// EventStarted fires once after the coin flip, before the first strike.
	// Source is the entity striking first.
	EventStarted = "skirmish.battle.started"

	// EventHit fires for every strike that beats the defender's protection
	EventHit = "skirmish.battle.hit"

	// EventMissed fires for every strike that does not
	EventMissed = "skirmish.battle.missed"

	// EventHealed fires when the winner recovers hit points after the kill
	EventHealed = "skirmish.battle.healed"

	// EventLootClaimed fires for each item the winner takes from the fallen
	EventLootClaimed = "skirmish.battle.loot.claimed"

	// EventLootShattered fires for each unclaimed item destroyed in place
	EventLootShattered = "skirmish.battle.loot.shattered"

	// EventLootSpared fires for each item left with the fallen
	EventLootSpared = "skirmish.battle.loot.spared"

	// EventResolved fires once, after the report is saved. Source is the
	// winner, target the fallen.
	EventResolved = "skirmish.battle.resolved"
)

// Context keys carried by battle events
const (
	ContextKeyBattleID  = "battle_id"
	ContextKeyTurn      = "turn"
	ContextKeyRoll      = "roll"
	ContextKeyDamage    = "damage"
	ContextKeyFatal     = "fatal"
	ContextKeyHealed    = "healed"
	ContextKeyHitPoints = "hit_points"
	ContextKeyTurns     = "turns"
)

// publish emits one battle event, stamped with the battle identifier. A
// publish failure is logged and does not interrupt the battle.
func (b *Battle) publish(ctx context.Context, eventType string, source, target core.Entity, values map[string]interface{}) {
	event := events.NewGameEvent(eventType, source, target)
	event.Context().Set(ContextKeyBattleID, b.id)
	for key, value := range values {
		event.Context().Set(key, value)
	}

	if err := b.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish battle event",
			"battle_id", b.id,
			"event_type", eventType,
			"error", err,
		)
	}
}
