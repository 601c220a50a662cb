package jsonfile

import "github.com/bnema/dmbot/internal/domain"

// The on-disk layout matches the documents the bot has always written:
// character_data.json maps user IDs to sheets, combat_data.json holds the
// single encounter record.

type characterSchema struct {
	Name  string   `json:"name"`
	Class string   `json:"class"`
	Items []string `json:"items"`
}

type encounterSchema struct {
	Ongoing      bool     `json:"ongoing,omitempty"`
	TurnOrder    []string `json:"turn_order,omitempty"`
	CurrentIndex int      `json:"current_index,omitempty"`
}

func toCharacterSchema(character domain.Character) characterSchema {
	items := character.Items
	if items == nil {
		items = []string{}
	}

	return characterSchema{
		Name:  character.Name,
		Class: character.Class,
		Items: items,
	}
}

func fromCharacterSchema(entry characterSchema) domain.Character {
	items := entry.Items
	if items == nil {
		items = []string{}
	}

	return domain.Character{
		Name:  entry.Name,
		Class: entry.Class,
		Items: items,
	}
}

func toEncounterSchema(encounter domain.Encounter) encounterSchema {
	return encounterSchema{
		Ongoing:      encounter.Ongoing,
		TurnOrder:    encounter.TurnOrder,
		CurrentIndex: encounter.CurrentIndex,
	}
}

func fromEncounterSchema(entry encounterSchema) domain.Encounter {
	encounter := domain.Encounter{
		Ongoing:      entry.Ongoing,
		TurnOrder:    entry.TurnOrder,
		CurrentIndex: entry.CurrentIndex,
	}
	if !encounter.Ongoing {
		// An absent or half-cleared record reads as idle.
		return domain.Encounter{}
	}

	return encounter
}
