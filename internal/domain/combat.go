package domain

import "math/rand"

// Encounter is the single process-wide combat record. When Ongoing is false
// the remaining fields carry no meaning.
type Encounter struct {
	Ongoing      bool
	TurnOrder    []string
	CurrentIndex int
}

// NewEncounter starts an encounter over the given character names. The turn
// order is a uniform shuffle of the names, fixed for the encounter's lifetime.
func NewEncounter(rng *rand.Rand, names []string) (Encounter, error) {
	if len(names) == 0 {
		return Encounter{}, ErrNoCharacters
	}

	order := append([]string(nil), names...)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return Encounter{
		Ongoing:   true,
		TurnOrder: order,
	}, nil
}

// Current returns the name of the acting participant, or "" when the turn
// order is empty.
func (e Encounter) Current() string {
	if len(e.TurnOrder) == 0 || e.CurrentIndex < 0 || e.CurrentIndex >= len(e.TurnOrder) {
		return ""
	}

	return e.TurnOrder[e.CurrentIndex]
}

// Advance moves to the next participant, wrapping at the end of the order,
// and returns the name now acting. An empty turn order (reachable only via
// tampered persisted state) resets the index to 0.
func (e *Encounter) Advance() string {
	if len(e.TurnOrder) == 0 {
		e.CurrentIndex = 0
		return ""
	}

	e.CurrentIndex = (e.CurrentIndex + 1) % len(e.TurnOrder)
	return e.TurnOrder[e.CurrentIndex]
}

// Clone returns a copy that does not share the turn-order slice.
func (e Encounter) Clone() Encounter {
	clone := e
	clone.TurnOrder = append([]string(nil), e.TurnOrder...)
	return clone
}
