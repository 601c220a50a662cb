package ports

import (
	"context"

	"github.com/bnema/dmbot/internal/domain"
)

// CharacterRepository persists the whole character document. Storage failures
// are absorbed by implementations: Load returns an empty document when the
// backing file is missing or unreadable, and a failed Save is logged rather
// than surfaced, so a command never fails on storage alone.
type CharacterRepository interface {
	Load(ctx context.Context) map[domain.UserID]domain.Character
	Save(ctx context.Context, characters map[domain.UserID]domain.Character)
}
