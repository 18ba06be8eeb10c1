package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator is the line that splits a source into multiple cards.
const Separator = "---"

// maxLineLength bounds a single source line. Cards are meant to be short.
const maxLineLength = 1024 * 1024

// Parse reads cards from r. The first returned card is numbered next; the
// rest follow consecutively. Segments without any lines (for example a
// trailing separator) produce no card.
func Parse(r io.Reader, next int) ([]Card, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var (
		cards   []Card
		title   string
		content []string
		seen    bool
	)

	flush := func() {
		if !seen {
			return
		}
		cards = append(cards, NewCard(title, content, next))
		next++
		title, content, seen = "", nil, false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == Separator {
			flush()
			continue
		}

		seen = true
		if title == "" && strings.Contains(line, "#") {
			title = line
			continue
		}
		content = append(content, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read card source: %w", err)
	}

	flush()
	return cards, nil
}

// ParseFile parses a single card source file. See Parse for numbering.
func ParseFile(path string, next int) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open card source: %w", err)
	}
	defer f.Close()

	cards, err := Parse(f, next)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// Load parses every path in order and builds a deck from the result.
// Card numbers start at 1 and continue across files. It fails with
// ErrEmptyDeck when the sources contain no cards at all.
func Load(paths []string) (*Deck, error) {
	var cards []Card
	for _, path := range paths {
		parsed, err := ParseFile(path, len(cards)+1)
		if err != nil {
			return nil, err
		}
		cards = append(cards, parsed...)
	}

	d, err := New(cards)
	if err != nil {
		return nil, fmt.Errorf("failed to build deck from %s: %w", strings.Join(paths, ", "), err)
	}
	return d, nil
}
