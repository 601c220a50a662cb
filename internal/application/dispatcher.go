package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bnema/dmbot/internal/ports"
)

// Dispatcher classifies inbound messages by command prefix and produces a
// single reply. Non-command text yields no reply at all.
type Dispatcher struct {
	registry *Registry
	combat   *Combat
	narrator ports.Narrator
}

func NewDispatcher(registry *Registry, combat *Combat, narrator ports.Narrator) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		combat:   combat,
		narrator: narrator,
	}
}

// Handle processes one message. ok reports whether a reply should be sent.
// Branches are checked in fixed priority order; at most one matches.
func (d *Dispatcher) Handle(ctx context.Context, userID domain.UserID, content string) (reply string, ok bool) {
	content = strings.TrimSpace(content)

	switch {
	case strings.HasPrefix(content, "!dnd"):
		return d.handleNarrate(ctx, argumentAfter(content, "!dnd")), true
	case strings.HasPrefix(content, "!roll"):
		return d.handleRoll(argumentAfter(content, "!roll")), true
	case strings.HasPrefix(content, "!createchar"):
		return d.handleCreateCharacter(ctx, userID, argumentAfter(content, "!createchar")), true
	case strings.HasPrefix(content, "!sheet"):
		return d.handleSheet(userID), true
	case strings.HasPrefix(content, "!setclass"):
		return d.handleSetClass(ctx, userID, argumentAfter(content, "!setclass")), true
	case strings.HasPrefix(content, "!additem"):
		return d.handleAddItem(ctx, userID, argumentAfter(content, "!additem")), true
	case strings.HasPrefix(content, "!startcombat"):
		return d.handleStartCombat(ctx), true
	case strings.HasPrefix(content, "!endturn"):
		return d.handleEndTurn(ctx), true
	case strings.HasPrefix(content, "!endcombat"):
		return d.handleEndCombat(ctx), true
	}

	return "", false
}

func argumentAfter(content, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(content, prefix))
}

func (d *Dispatcher) handleNarrate(ctx context.Context, prompt string) string {
	if prompt == "" {
		return "Please provide an action or query after !dnd."
	}

	reply, err := d.narrator.Narrate(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("⚠️ Error contacting OpenAI: %v", err)
	}

	return reply
}

func (d *Dispatcher) handleRoll(expression string) string {
	results, err := domain.Roll(expression)
	if err != nil {
		return fmt.Sprintf("⚠️ %v", err)
	}

	return fmt.Sprintf("🎲 You rolled: %s", domain.FormatRolls(results))
}

func (d *Dispatcher) handleCreateCharacter(ctx context.Context, userID domain.UserID, name string) string {
	character, err := d.registry.Create(ctx, userID, name)
	if err != nil {
		return "Please provide a name for your character."
	}

	return fmt.Sprintf("Character '%s' created!", character.Name)
}

func (d *Dispatcher) handleSheet(userID domain.UserID) string {
	character, ok := d.registry.Get(userID)
	if !ok {
		return "You don't have a character yet. Use !createchar <name> to create one."
	}

	return fmt.Sprintf("📜 **%s** (Class: %s)\nInventory: %s",
		character.Name, character.DisplayClass(), character.DisplayItems())
}

func (d *Dispatcher) handleSetClass(ctx context.Context, userID domain.UserID, className string) string {
	character, err := d.registry.SetClass(ctx, userID, className)
	switch {
	case errors.Is(err, domain.ErrNoCharacter):
		return "Create a character first using !createchar."
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Please specify a class."
	case err != nil:
		return fmt.Sprintf("⚠️ %v", err)
	}

	return fmt.Sprintf("Class set to %s for %s.", className, character.Name)
}

func (d *Dispatcher) handleAddItem(ctx context.Context, userID domain.UserID, itemName string) string {
	character, err := d.registry.AddItem(ctx, userID, itemName)
	switch {
	case errors.Is(err, domain.ErrNoCharacter):
		return "Create a character first using !createchar."
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Please specify an item to add."
	case err != nil:
		return fmt.Sprintf("⚠️ %v", err)
	}

	return fmt.Sprintf("Added %s to %s's inventory.", itemName, character.Name)
}

func (d *Dispatcher) handleStartCombat(ctx context.Context) string {
	encounter, err := d.combat.Start(ctx, d.registry.Names())
	switch {
	case errors.Is(err, domain.ErrCombatActive):
		return "Combat is already in progress."
	case errors.Is(err, domain.ErrNoCharacters):
		return "No characters exist to start combat."
	case err != nil:
		return fmt.Sprintf("⚠️ %v", err)
	}

	return fmt.Sprintf("⚔️ Combat begins! Turn order: %s\nIt is now %s's turn.",
		strings.Join(encounter.TurnOrder, ", "), encounter.Current())
}

func (d *Dispatcher) handleEndTurn(ctx context.Context) string {
	acting, err := d.combat.EndTurn(ctx)
	if err != nil {
		return "No combat is currently in progress."
	}
	if acting == "" {
		return "It is now no one's turn."
	}

	return fmt.Sprintf("It is now %s's turn.", acting)
}

func (d *Dispatcher) handleEndCombat(ctx context.Context) string {
	if err := d.combat.End(ctx); err != nil {
		return "No combat is currently in progress."
	}

	return "🛑 Combat has ended."
}
