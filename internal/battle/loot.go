package battle

import (
	"context"
	"log/slog"

	"github.com/hargrim/skirmish/internal/realm"
)

// lootFallen walks the fallen entity's anchored equipment and lets the
// winner claim what it can carry. Shiny items are offered before dull
// ones, each group in the fallen's anchor order. An item the winner has
// no empty qualifying anchor for shatters if it is a weapon or an armor;
// purses and backpacks stay with the fallen. A claim the winner's
// acceptance policy refuses (carry capacity, category limits) also leaves
// the item where it is.
func (b *Battle) lootFallen(ctx context.Context, winner, fallen realm.Entity) {
	items := fallen.Equipment()

	claimOrder := make([]realm.Equipment, 0, len(items))
	for _, item := range items {
		if item.Shiny() {
			claimOrder = append(claimOrder, item)
		}
	}
	for _, item := range items {
		if !item.Shiny() {
			claimOrder = append(claimOrder, item)
		}
	}

	for _, item := range claimOrder {
		if !winner.CanPlace(item) {
			b.discard(ctx, winner, item)
			continue
		}

		if err := item.SetOwner(winner); err != nil {
			slog.Warn("Failed to claim loot",
				"battle_id", b.id,
				"item", item.GetID(),
				"winner", winner.Name(),
				"error", err,
			)
			b.publish(ctx, EventLootSpared, winner, item, nil)
			continue
		}

		b.publish(ctx, EventLootClaimed, winner, item, nil)
	}
}

// discard resolves an item the winner has no anchor for: weapons and
// armors shatter in place, anything else stays with the fallen.
func (b *Battle) discard(ctx context.Context, winner realm.Entity, item realm.Equipment) {
	switch item.(type) {
	case *realm.Weapon, *realm.Armor:
		item.Destroy()
		b.publish(ctx, EventLootShattered, winner, item, nil)
	default:
		b.publish(ctx, EventLootSpared, winner, item, nil)
	}
}
