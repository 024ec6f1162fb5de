package card

import "github.com/google/uuid"

// Card represents one card on the table
type Card struct {
	ID      uuid.UUID // Unique per card, independent of content and position
	Content string    // Symbol drawn from the palette; shared by exactly one other card
	FaceUp  bool      // Content is visible
	Matched bool      // Resolved as part of a found pair
}

// New returns a face-down, unmatched card with a fresh ID
func New(content string) Card {
	return Card{
		ID:      uuid.New(),
		Content: content,
	}
}
