package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/charmbracelet/lipgloss"

	"github.com/hargrim/skirmish/internal/battle"
)

// Narration line styles
var (
	styleOpen    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	styleHit     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	styleFatal   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleMiss    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	styleHeal    = lipgloss.NewStyle().Foreground(lipgloss.Color("85"))
	styleClaim   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleShatter = lipgloss.NewStyle().Foreground(lipgloss.Color("209"))
	styleSpare   = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	styleWin     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("84"))
)

// narrator renders battle events as styled lines on out
type narrator struct {
	out io.Writer
}

func newNarrator(out io.Writer) *narrator {
	return &narrator{out: out}
}

// subscribe attaches the narrator to every battle event type
func (n *narrator) subscribe(bus events.EventBus) {
	bus.SubscribeFunc(battle.EventStarted, 0, n.started)
	bus.SubscribeFunc(battle.EventHit, 0, n.hit)
	bus.SubscribeFunc(battle.EventMissed, 0, n.missed)
	bus.SubscribeFunc(battle.EventHealed, 0, n.healed)
	bus.SubscribeFunc(battle.EventLootClaimed, 0, n.lootClaimed)
	bus.SubscribeFunc(battle.EventLootShattered, 0, n.lootShattered)
	bus.SubscribeFunc(battle.EventLootSpared, 0, n.lootSpared)
	bus.SubscribeFunc(battle.EventResolved, 0, n.resolved)
}

func (n *narrator) started(_ context.Context, event events.Event) error {
	n.line(styleOpen, "%s squares off against %s and strikes first.",
		event.Source().GetID(), event.Target().GetID())
	return nil
}

func (n *narrator) hit(_ context.Context, event events.Event) error {
	turn := contextInt(event, battle.ContextKeyTurn)
	damage := contextInt(event, battle.ContextKeyDamage)
	if contextBool(event, battle.ContextKeyFatal) {
		n.line(styleFatal, "Turn %d: %s strikes %s down with a %d-damage blow.",
			turn, event.Source().GetID(), event.Target().GetID(), damage)
		return nil
	}
	n.line(styleHit, "Turn %d: %s hits %s for %d (%d hit points left).",
		turn, event.Source().GetID(), event.Target().GetID(), damage,
		contextInt(event, battle.ContextKeyHitPoints))
	return nil
}

func (n *narrator) missed(_ context.Context, event events.Event) error {
	n.line(styleMiss, "Turn %d: %s swings at %s and misses (rolled %d).",
		contextInt(event, battle.ContextKeyTurn), event.Source().GetID(),
		event.Target().GetID(), contextInt(event, battle.ContextKeyRoll))
	return nil
}

func (n *narrator) healed(_ context.Context, event events.Event) error {
	n.line(styleHeal, "%s recovers %d hit points over the fallen (%d now).",
		event.Source().GetID(), contextInt(event, battle.ContextKeyHealed),
		contextInt(event, battle.ContextKeyHitPoints))
	return nil
}

func (n *narrator) lootClaimed(_ context.Context, event events.Event) error {
	n.line(styleClaim, "%s claims %s from the fallen.",
		event.Source().GetID(), event.Target().GetID())
	return nil
}

func (n *narrator) lootShattered(_ context.Context, event events.Event) error {
	n.line(styleShatter, "%s shatters, unclaimed.", event.Target().GetID())
	return nil
}

func (n *narrator) lootSpared(_ context.Context, event events.Event) error {
	n.line(styleSpare, "%s stays with the fallen.", event.Target().GetID())
	return nil
}

func (n *narrator) resolved(_ context.Context, event events.Event) error {
	n.line(styleWin, "%s stands victorious over %s after %d turns.",
		event.Source().GetID(), event.Target().GetID(),
		contextInt(event, battle.ContextKeyTurns))
	return nil
}

func (n *narrator) line(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(n.out, style.Render(fmt.Sprintf(format, args...)))
}

// contextInt reads an int context value off an event, zero when absent
func contextInt(event events.Event, key string) int {
	if v, ok := event.Context().Get(key); ok {
		if number, isInt := v.(int); isInt {
			return number
		}
	}
	return 0
}

// contextBool reads a bool context value off an event, false when absent
func contextBool(event events.Event, key string) bool {
	if v, ok := event.Context().Get(key); ok {
		if flag, isBool := v.(bool); isBool {
			return flag
		}
	}
	return false
}
