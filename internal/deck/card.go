package deck

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

var (
	// ErrEmptyDeck is returned when a deck would contain no cards.
	ErrEmptyDeck = errors.New("deck contains no cards")
	// ErrCardOrder is returned when card numbers are not positive and strictly increasing.
	ErrCardOrder = errors.New("card numbers must be positive and strictly increasing")
)

// Card is a single flashcard. The zero value is an untitled, empty card
// with number 0, which New rejects.
type Card struct {
	title   string
	content []string
	number  int
}

// NewCard builds a card. An empty title means the card has no title.
// The content slice is copied.
func NewCard(title string, content []string, number int) Card {
	return Card{
		title:   title,
		content: slices.Clone(content),
		number:  number,
	}
}

// Title returns the card title, or "" when the card has none.
func (c Card) Title() string {
	return c.title
}

// HasTitle reports whether the card carries a title line.
func (c Card) HasTitle() bool {
	return c.title != ""
}

// Content returns a copy of the card's text lines.
func (c Card) Content() []string {
	return slices.Clone(c.content)
}

// Lines returns the number of content lines.
func (c Card) Lines() int {
	return len(c.content)
}

// Line returns content line i.
func (c Card) Line(i int) string {
	return c.content[i]
}

// ContentLength returns the total number of characters across all content
// lines.
func (c Card) ContentLength() int {
	total := 0
	for _, line := range c.content {
		total += utf8.RuneCountInString(line)
	}
	return total
}

// Number returns the 1-based position of the card in its deck.
func (c Card) Number() int {
	return c.number
}

// String returns a short human-readable description of the card.
func (c Card) String() string {
	if c.HasTitle() {
		return fmt.Sprintf("Card %d %q (%d lines)", c.number, c.title, len(c.content))
	}
	return fmt.Sprintf("Card %d (%d lines)", c.number, len(c.content))
}

// Deck is an immutable, non-empty, ordered sequence of cards.
type Deck struct {
	cards []Card
}

// New validates cards and returns a deck holding a copy of them.
// It fails with ErrEmptyDeck for zero cards and ErrCardOrder when numbers
// are not positive and strictly increasing.
func New(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	prev := 0
	for i, c := range cards {
		if c.number <= prev {
			return nil, fmt.Errorf("card at index %d has number %d after %d: %w", i, c.number, prev, ErrCardOrder)
		}
		prev = c.number
	}

	return &Deck{cards: slices.Clone(cards)}, nil
}

// Len returns the number of cards, always at least 1.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card at index i. It panics if i is out of range, like a
// slice index would.
func (d *Deck) Card(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of the deck's cards in order.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
