package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncounterShufflesAllNames(t *testing.T) {
	names := []string{"Bram", "Zel", "Orla"}

	encounter, err := NewEncounter(rand.New(rand.NewSource(7)), names)
	require.NoError(t, err)

	assert.True(t, encounter.Ongoing)
	assert.Equal(t, 0, encounter.CurrentIndex)
	assert.ElementsMatch(t, names, encounter.TurnOrder)
	// Input slice must not be reordered in place.
	assert.Equal(t, []string{"Bram", "Zel", "Orla"}, names)
}

func TestNewEncounterRequiresNames(t *testing.T) {
	_, err := NewEncounter(rand.New(rand.NewSource(1)), nil)
	require.ErrorIs(t, err, ErrNoCharacters)
}

func TestAdvanceCyclesThroughTurnOrder(t *testing.T) {
	encounter := Encounter{Ongoing: true, TurnOrder: []string{"A", "B", "C"}}
	first := encounter.Current()

	seen := []string{encounter.Advance(), encounter.Advance(), encounter.Advance()}

	assert.Equal(t, first, seen[2])
	assert.ElementsMatch(t, []string{"A", "B", "C"}, seen)
	assert.Equal(t, 0, encounter.CurrentIndex)
}

func TestAdvanceWithEmptyTurnOrderResetsIndex(t *testing.T) {
	encounter := Encounter{Ongoing: true, CurrentIndex: 3}

	assert.Equal(t, "", encounter.Advance())
	assert.Equal(t, 0, encounter.CurrentIndex)
}

func TestCurrentWithOutOfRangeIndex(t *testing.T) {
	encounter := Encounter{Ongoing: true, TurnOrder: []string{"A"}, CurrentIndex: 5}
	assert.Equal(t, "", encounter.Current())
}

func TestEncounterCloneDoesNotShareTurnOrder(t *testing.T) {
	encounter := Encounter{Ongoing: true, TurnOrder: []string{"A", "B"}}
	clone := encounter.Clone()
	clone.TurnOrder[0] = "X"

	assert.Equal(t, "A", encounter.TurnOrder[0])
}
