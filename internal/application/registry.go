// Package application wires the bot's services over the domain and ports:
// the character registry, the combat coordinator, and the command dispatcher.
package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bnema/dmbot/internal/ports"
)

// Registry owns the character document. All mutations run a full
// load-mutate-save cycle under one mutex, so concurrent commands on the same
// document cannot lose writes.
type Registry struct {
	mu         sync.Mutex
	repo       ports.CharacterRepository
	characters map[domain.UserID]domain.Character
	order      []domain.UserID
}

func NewRegistry(ctx context.Context, repo ports.CharacterRepository) *Registry {
	characters := repo.Load(ctx)

	order := make([]domain.UserID, 0, len(characters))
	for userID := range characters {
		order = append(order, userID)
	}

	return &Registry{
		repo:       repo,
		characters: characters,
		order:      order,
	}
}

// Create replaces any existing character for the user with a fresh record.
func (r *Registry) Create(ctx context.Context, userID domain.UserID, name string) (domain.Character, error) {
	character, err := domain.NewCharacter(name)
	if err != nil {
		return domain.Character{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[userID]; !exists {
		r.order = append(r.order, userID)
	}
	r.characters[userID] = character
	r.repo.Save(ctx, r.characters)

	return character.Clone(), nil
}

// Get looks up the user's character without mutating anything.
func (r *Registry) Get(userID domain.UserID) (domain.Character, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	character, ok := r.characters[userID]
	if !ok {
		return domain.Character{}, false
	}

	return character.Clone(), true
}

// SetClass overwrites the character's class.
func (r *Registry) SetClass(ctx context.Context, userID domain.UserID, className string) (domain.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	character, ok := r.characters[userID]
	if !ok {
		return domain.Character{}, domain.ErrNoCharacter
	}
	if className == "" {
		return domain.Character{}, fmt.Errorf("%w: class name", domain.ErrInvalidArgument)
	}

	character.Class = className
	r.characters[userID] = character
	r.repo.Save(ctx, r.characters)

	return character.Clone(), nil
}

// AddItem appends an item to the character's inventory. Items are never
// removed through the registry.
func (r *Registry) AddItem(ctx context.Context, userID domain.UserID, itemName string) (domain.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	character, ok := r.characters[userID]
	if !ok {
		return domain.Character{}, domain.ErrNoCharacter
	}
	if itemName == "" {
		return domain.Character{}, fmt.Errorf("%w: item name", domain.ErrInvalidArgument)
	}

	character = character.Clone()
	character.Items = append(character.Items, itemName)
	r.characters[userID] = character
	r.repo.Save(ctx, r.characters)

	return character.Clone(), nil
}

// Names returns all character display names in creation order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.order))
	for _, userID := range r.order {
		if character, ok := r.characters[userID]; ok {
			names = append(names, character.Name)
		}
	}

	return names
}

// Snapshot returns every record for offline inspection, in creation order.
func (r *Registry) Snapshot() []CharacterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]CharacterEntry, 0, len(r.order))
	for _, userID := range r.order {
		if character, ok := r.characters[userID]; ok {
			entries = append(entries, CharacterEntry{
				OwnerID:   userID,
				Character: character.Clone(),
			})
		}
	}

	return entries
}

// CharacterEntry pairs a character with its owning user.
type CharacterEntry struct {
	OwnerID   domain.UserID
	Character domain.Character
}
