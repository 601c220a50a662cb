package ports

import "context"

// Narrator generates narrative text for a player prompt. Implementations call
// an external completion service; errors are surfaced to the user verbatim.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}
