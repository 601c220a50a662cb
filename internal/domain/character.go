package domain

import (
	"fmt"
	"strings"
)

// UserID identifies the platform user that owns a character.
type UserID string

// Character is the per-user persistent profile. A user owns at most one
// character; creating a new one replaces the old record wholesale.
type Character struct {
	Name  string
	Class string
	Items []string
}

// NewCharacter builds a fresh character with an empty class and inventory.
func NewCharacter(name string) (Character, error) {
	if strings.TrimSpace(name) == "" {
		return Character{}, fmt.Errorf("%w: character name", ErrInvalidArgument)
	}

	return Character{
		Name:  name,
		Items: []string{},
	}, nil
}

// DisplayClass returns the class label shown on the character sheet.
func (c Character) DisplayClass() string {
	if c.Class == "" {
		return "Unassigned"
	}

	return c.Class
}

// DisplayItems returns the inventory line shown on the character sheet.
func (c Character) DisplayItems() string {
	if len(c.Items) == 0 {
		return "No items"
	}

	return strings.Join(c.Items, ", ")
}

// Clone returns a copy that does not share the items slice.
func (c Character) Clone() Character {
	clone := c
	clone.Items = append([]string(nil), c.Items...)
	return clone
}
