package game

import (
	"github.com/google/uuid"

	"github.com/arcanaland/memorymatch/internal/card"
)

// ChangeKind identifies what kind of mutation produced a Change
type ChangeKind int

const (
	ChangeNewGame ChangeKind = iota
	ChangeFlipped
	ChangeMatched
	ChangeMismatched
	ChangeWon
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeNewGame:
		return "new-game"
	case ChangeFlipped:
		return "flipped"
	case ChangeMatched:
		return "matched"
	case ChangeMismatched:
		return "mismatched"
	case ChangeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the game state, safe to keep and render
type Snapshot struct {
	GridSize   int
	Generation uint64
	Cards      []card.Card
	Pending    []uuid.UUID
	State      TurnState
	Won        bool
}

// Change is delivered to observers after every mutation
type Change struct {
	Kind     ChangeKind
	Snapshot Snapshot
}

// Subscribe registers fn to be called after every state change. Calls happen
// outside the engine lock, so fn may query or drive the engine. The returned
// function removes the subscription.
//
// Because fn runs after the lock is released, calls made from different
// goroutines can arrive out of order. A resolution firing on the timer
// goroutine may be delivered after a NewGame made on another goroutine, so
// Change.Snapshot can be older than the engine's current state. Observers
// that keep state should ignore changes whose Snapshot.Generation is lower
// than the last one seen, or re-read Engine.Snapshot.
func (e *Engine) Subscribe(fn func(Change)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextObs
	e.nextObs++
	e.observers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.observers, id)
		e.mu.Unlock()
	}
}

func (e *Engine) notify(c Change) {
	e.mu.Lock()
	fns := make([]func(Change), 0, len(e.observers))
	for id := 0; id < e.nextObs; id++ {
		if fn, ok := e.observers[id]; ok {
			fns = append(fns, fn)
		}
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
