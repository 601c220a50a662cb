// Package status renders the bot's persisted state for the `dmbot status`
// command.
package status

import (
	"fmt"
	"strings"

	"github.com/bnema/dmbot/internal/application"
	"github.com/bnema/dmbot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Snapshot is everything the status view shows.
type Snapshot struct {
	Characters []application.CharacterEntry
	Encounter  domain.Encounter
}

func renderView(snapshot Snapshot, s styles) string {
	lines := []string{
		s.title.Render("Dungeon Master Bot"),
		s.header.Render(fmt.Sprintf("characters: %d", len(snapshot.Characters))),
	}

	if len(snapshot.Characters) == 0 {
		lines = append(lines, s.empty.Render("No characters created yet."))
	}

	for _, entry := range snapshot.Characters {
		lines = append(lines, s.section.Render(renderCharacter(entry, s)))
	}

	lines = append(lines, s.section.Render(renderEncounter(snapshot.Encounter, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCharacter(entry application.CharacterEntry, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.name.Render(entry.Character.Name),
		" ",
		s.owner.Render(fmt.Sprintf("(owner %s)", entry.OwnerID)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		s.detail.Render(fmt.Sprintf("class: %s", entry.Character.DisplayClass())),
		s.detail.Render(fmt.Sprintf("inventory: %s", entry.Character.DisplayItems())),
	)
}

func renderEncounter(encounter domain.Encounter, s styles) string {
	if !encounter.Ongoing {
		return s.combatOff.Render("combat: idle")
	}

	lines := []string{
		s.combatOn.Render("combat: active"),
		s.detail.Render(fmt.Sprintf("turn order: %s", strings.Join(encounter.TurnOrder, " → "))),
	}

	if acting := encounter.Current(); acting != "" {
		lines = append(lines, s.acting.Render(fmt.Sprintf("acting: %s", acting)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
