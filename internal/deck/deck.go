package deck

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/arcanaland/memorymatch/internal/card"
)

// Deal builds a shuffled deck holding each symbol exactly twice. Every card
// starts face down and unmatched with a fresh ID.
func Deal(symbols []string, rng *rand.Rand) []card.Card {
	contents := make([]string, 0, len(symbols)*2)
	contents = append(contents, symbols...)
	contents = append(contents, symbols...)

	rng.Shuffle(len(contents), func(i, j int) {
		contents[i], contents[j] = contents[j], contents[i]
	})

	cards := make([]card.Card, len(contents))
	for i, content := range contents {
		cards[i] = card.New(content)
	}
	return cards
}

// Index returns the position of the card with the given ID, or -1
func Index(cards []card.Card, id uuid.UUID) int {
	return slices.IndexFunc(cards, func(c card.Card) bool { return c.ID == id })
}

// AllMatched reports whether a non-empty deck has every card matched
func AllMatched(cards []card.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// Check verifies the deck invariants: even size, unique IDs, every symbol on
// exactly two cards and at most two cards face up without being matched.
func Check(cards []card.Card) error {
	if len(cards)%2 != 0 {
		return fmt.Errorf("deck has odd size %d", len(cards))
	}

	ids := make(map[uuid.UUID]bool, len(cards))
	counts := make(map[string]int)
	revealed := 0
	for _, c := range cards {
		if ids[c.ID] {
			return fmt.Errorf("duplicate card ID %s", c.ID)
		}
		ids[c.ID] = true
		counts[c.Content]++
		if c.FaceUp && !c.Matched {
			revealed++
		}
	}

	for content, n := range counts {
		if n != 2 {
			return fmt.Errorf("symbol %q appears on %d cards", content, n)
		}
	}

	if revealed > 2 {
		return fmt.Errorf("%d unmatched cards face up", revealed)
	}
	return nil
}
