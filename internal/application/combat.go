package application

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bnema/dmbot/internal/ports"
)

// Combat owns the single process-wide encounter record. The turn order is
// fixed at start; characters created later do not join an in-progress
// encounter.
type Combat struct {
	mu    sync.Mutex
	repo  ports.CombatRepository
	rng   *rand.Rand
	state domain.Encounter
}

// NewCombat restores any persisted encounter so combat survives restarts.
// A nil rng gets a time-seeded source; tests inject a fixed seed.
func NewCombat(ctx context.Context, repo ports.CombatRepository, rng *rand.Rand) *Combat {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Combat{
		repo:  repo,
		rng:   rng,
		state: repo.Load(ctx),
	}
}

// Start begins an encounter over the given names with a shuffled turn order.
func (c *Combat) Start(ctx context.Context, names []string) (domain.Encounter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Ongoing {
		return domain.Encounter{}, domain.ErrCombatActive
	}

	encounter, err := domain.NewEncounter(c.rng, names)
	if err != nil {
		return domain.Encounter{}, err
	}

	c.state = encounter
	c.repo.Save(ctx, c.state)

	return c.state.Clone(), nil
}

// EndTurn advances to the next participant and returns the name now acting.
func (c *Combat) EndTurn(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Ongoing {
		return "", domain.ErrCombatNotActive
	}

	acting := c.state.Advance()
	c.repo.Save(ctx, c.state)

	return acting, nil
}

// End clears the encounter and returns the coordinator to idle.
func (c *Combat) End(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Ongoing {
		return domain.ErrCombatNotActive
	}

	c.state = domain.Encounter{}
	c.repo.Save(ctx, c.state)

	return nil
}

// Status returns a copy of the current encounter record.
func (c *Combat) Status() domain.Encounter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}
