// Package game implements the memory-matching engine: the deck, the turn
// state machine and the delayed resolution of a revealed pair.
//
// The engine is safe for use from multiple goroutines. Resolutions fire on
// whatever goroutine the Scheduler uses; observers registered with Subscribe
// are called after the engine lock has been released.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/memorymatch/internal/card"
	"github.com/arcanaland/memorymatch/internal/deck"
	"github.com/arcanaland/memorymatch/internal/palette"
)

const (
	DefaultGridSize      = 4
	DefaultMatchDelay    = 600 * time.Millisecond
	DefaultMismatchDelay = time.Second
)

var (
	// ErrInvalidGridSize is returned for a grid size outside palette.GridSizes.
	ErrInvalidGridSize = errors.New("invalid grid size")

	// ErrPaletteTooSmall is returned when the palette cannot fill the grid.
	ErrPaletteTooSmall = palette.ErrPaletteTooSmall

	// ErrInvalidPalette is returned when a symbol to be dealt is blank or repeated.
	ErrInvalidPalette = palette.ErrInvalidPalette
)

// TurnState is the phase of the current turn
type TurnState int

const (
	Idle TurnState = iota
	OneRevealed
	Resolving
)

func (s TurnState) String() string {
	switch s {
	case Idle:
		return "idle"
	case OneRevealed:
		return "one-revealed"
	case Resolving:
		return "resolving"
	default:
		return fmt.Sprintf("TurnState(%d)", int(s))
	}
}

// Engine owns the deck and the turn state. It is the only mutator of card flags.
type Engine struct {
	mu sync.Mutex

	symbols       []string
	gridSize      int
	cards         []card.Card
	pending       []uuid.UUID
	generation    uint64
	matchDelay    time.Duration
	mismatchDelay time.Duration

	scheduler Scheduler
	rng       *rand.Rand
	logger    *slog.Logger

	observers map[int]func(Change)
	nextObs   int
}

// Option configures an Engine
type Option func(*Engine)

// WithGridSize sets the grid size of the first game
func WithGridSize(size int) Option {
	return func(e *Engine) { e.gridSize = size }
}

// WithPalette sets the ordered symbols cards are drawn from. A nil palette
// keeps the built-in one.
func WithPalette(p *palette.Palette) Option {
	return func(e *Engine) {
		if p != nil {
			e.symbols = slices.Clone(p.Symbols)
		}
	}
}

// WithDelays sets how long a revealed pair stays up before it is resolved
func WithDelays(match, mismatch time.Duration) Option {
	return func(e *Engine) {
		e.matchDelay = match
		e.mismatchDelay = mismatch
	}
}

// WithScheduler replaces the timer used for delayed resolution
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.scheduler = s }
}

// WithRand sets the shuffle source
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger for game events. A nil logger keeps the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine and deals its first game
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		symbols:       palette.Default().Symbols,
		gridSize:      DefaultGridSize,
		matchDelay:    DefaultMatchDelay,
		mismatchDelay: DefaultMismatchDelay,
		scheduler:     timerScheduler{},
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		observers:     make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.matchDelay <= 0 || e.mismatchDelay <= 0 {
		return nil, fmt.Errorf("resolution delays must be positive (match %s, mismatch %s)", e.matchDelay, e.mismatchDelay)
	}

	if err := e.NewGame(e.gridSize); err != nil {
		return nil, err
	}
	return e, nil
}

// NewGame discards the current deck and deals a freshly shuffled one for the
// given grid size. A resolution still in flight for the old deck is dropped.
func (e *Engine) NewGame(gridSize int) error {
	if !slices.Contains(palette.GridSizes, gridSize) {
		return fmt.Errorf("%w: %d (supported: %v)", ErrInvalidGridSize, gridSize, palette.GridSizes)
	}

	pairCount := palette.PairsFor(gridSize)
	if pairCount > len(e.symbols) {
		return fmt.Errorf("%w: %dx%d grid needs %d symbols, palette has %d",
			ErrPaletteTooSmall, gridSize, gridSize, pairCount, len(e.symbols))
	}
	if err := palette.CheckSymbols(e.symbols[:pairCount]); err != nil {
		return fmt.Errorf("%dx%d grid: %w", gridSize, gridSize, err)
	}

	e.mu.Lock()
	cards := deck.Deal(e.symbols[:pairCount], e.rng)

	e.gridSize = gridSize
	e.cards = cards
	e.pending = nil
	e.generation++
	gen := e.generation
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Info("new game", "grid_size", gridSize, "cards", len(cards), "generation", gen)
	e.notify(Change{Kind: ChangeNewGame, Snapshot: snap})
	return nil
}

// Reset deals a new game at the current grid size
func (e *Engine) Reset() error {
	return e.NewGame(e.GridSize())
}

// SetGridSize switches to a new grid size and deals a new game
func (e *Engine) SetGridSize(size int) error {
	return e.NewGame(size)
}

// ChooseCard reveals the card with the given ID. Illegal moves are ignored:
// an unknown card, a card already face-up or matched, or any card while a
// pair is waiting to be resolved. It reports whether the move was taken.
func (e *Engine) ChooseCard(id uuid.UUID) bool {
	e.mu.Lock()

	idx := e.indexLocked(id)
	if idx < 0 || e.cards[idx].FaceUp || e.cards[idx].Matched || len(e.pending) >= 2 {
		e.mu.Unlock()
		e.logger.Debug("move ignored", "card", id)
		return false
	}

	e.cards[idx].FaceUp = true
	e.pending = append(e.pending, id)

	var task *resolution
	if len(e.pending) == 2 {
		task = e.resolutionLocked()
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("card flipped", "card", id, "content", snap.Cards[idx].Content, "pending", len(snap.Pending))
	e.notify(Change{Kind: ChangeFlipped, Snapshot: snap})

	if task != nil {
		e.scheduler.AfterFunc(task.delay, func() {
			e.resolve(task.generation, task.first, task.second, task.match)
		})
	}
	return true
}

// resolution is a pending pair waiting for its delayed outcome
type resolution struct {
	generation    uint64
	first, second uuid.UUID
	match         bool
	delay         time.Duration
}

// resolutionLocked compares the two pending cards. Caller must hold e.mu.
func (e *Engine) resolutionLocked() *resolution {
	first := e.cards[e.indexLocked(e.pending[0])]
	second := e.cards[e.indexLocked(e.pending[1])]

	r := &resolution{
		generation: e.generation,
		first:      first.ID,
		second:     second.ID,
		match:      first.Content == second.Content,
		delay:      e.mismatchDelay,
	}
	if r.match {
		r.delay = e.matchDelay
	}
	return r
}

func (e *Engine) resolve(gen uint64, a, b uuid.UUID, match bool) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		e.logger.Debug("stale resolution dropped", "generation", gen)
		return
	}

	for _, id := range []uuid.UUID{a, b} {
		if idx := e.indexLocked(id); idx >= 0 {
			if match {
				e.cards[idx].Matched = true
			} else {
				e.cards[idx].FaceUp = false
			}
		}
	}
	e.pending = nil
	won := e.isWonLocked()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	kind := ChangeMismatched
	if match {
		kind = ChangeMatched
	}
	e.logger.Debug("pair resolved", "match", match, "generation", gen)
	e.notify(Change{Kind: kind, Snapshot: snap})

	if won {
		e.logger.Info("game won", "grid_size", snap.GridSize, "generation", gen)
		e.notify(Change{Kind: ChangeWon, Snapshot: snap})
	}
}

// IsWon reports whether every card of a non-empty deck is matched
func (e *Engine) IsWon() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isWonLocked()
}

func (e *Engine) isWonLocked() bool {
	return deck.AllMatched(e.cards)
}

// Cards returns a copy of the deck in table order
func (e *Engine) Cards() []card.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.cards)
}

// Pending returns the IDs of the revealed cards awaiting resolution
func (e *Engine) Pending() []uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.pending)
}

func (e *Engine) GridSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gridSize
}

// State returns the phase of the current turn
func (e *Engine) State() TurnState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return stateOf(len(e.pending))
}

// Columns returns how many columns the board is laid out in
func (e *Engine) Columns() int {
	return Columns(e.GridSize())
}

// Columns returns the layout column count for a grid size
func Columns(gridSize int) int {
	switch gridSize {
	case 2:
		return 2
	case 4:
		return 3
	default:
		return 4
	}
}

// Snapshot returns a consistent copy of the whole game state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		GridSize:   e.gridSize,
		Generation: e.generation,
		Cards:      slices.Clone(e.cards),
		Pending:    slices.Clone(e.pending),
		State:      stateOf(len(e.pending)),
		Won:        e.isWonLocked(),
	}
}

func (e *Engine) indexLocked(id uuid.UUID) int {
	return deck.Index(e.cards, id)
}

func stateOf(pending int) TurnState {
	switch pending {
	case 0:
		return Idle
	case 1:
		return OneRevealed
	default:
		return Resolving
	}
}
