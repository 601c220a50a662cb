package status

import (
	"testing"

	"github.com/bnema/dmbot/internal/application"
	"github.com/bnema/dmbot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderViewEmptyState(t *testing.T) {
	output := renderView(Snapshot{}, newStyles())

	assert.Contains(t, output, "Dungeon Master Bot")
	assert.Contains(t, output, "characters: 0")
	assert.Contains(t, output, "No characters created yet.")
	assert.Contains(t, output, "combat: idle")
}

func TestRenderViewWithCharactersAndEncounter(t *testing.T) {
	snapshot := Snapshot{
		Characters: []application.CharacterEntry{
			{OwnerID: "111", Character: domain.Character{Name: "Bram", Class: "Wizard", Items: []string{"Staff"}}},
			{OwnerID: "222", Character: domain.Character{Name: "Zel"}},
		},
		Encounter: domain.Encounter{
			Ongoing:      true,
			TurnOrder:    []string{"Zel", "Bram"},
			CurrentIndex: 1,
		},
	}

	output := renderView(snapshot, newStyles())

	assert.Contains(t, output, "characters: 2")
	assert.Contains(t, output, "Bram")
	assert.Contains(t, output, "class: Wizard")
	assert.Contains(t, output, "inventory: Staff")
	assert.Contains(t, output, "class: Unassigned")
	assert.Contains(t, output, "inventory: No items")
	assert.Contains(t, output, "combat: active")
	assert.Contains(t, output, "turn order: Zel → Bram")
	assert.Contains(t, output, "acting: Bram")
}
