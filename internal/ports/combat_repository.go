package ports

import (
	"context"

	"github.com/bnema/dmbot/internal/domain"
)

// CombatRepository persists the single combat record with the same
// absorb-and-log policy as CharacterRepository.
type CombatRepository interface {
	Load(ctx context.Context) domain.Encounter
	Save(ctx context.Context, encounter domain.Encounter)
}
