// Package deck loads and holds the ordered collection of cards shown by the
// viewer.
//
// A Card is one displayable unit: an optional title and an ordered list of
// text lines. A Deck is a non-empty, immutable sequence of cards numbered
// from 1 in load order.
//
// # Source Format
//
// Card sources are plain text (usually Markdown) files:
//
//	# Capital of France
//	Paris
//	---
//	# Capital of Italy
//	Rome
//
// Within a card, the first line that contains a '#' becomes the title and
// every other line is content. A line consisting of exactly "---" ends the
// current card and starts the next one. Each file contributes one or more
// cards; numbering continues across files.
//
// # Usage Example
//
//	d, err := deck.Load([]string{"geography.md", "history.md"})
//	if err != nil {
//	    return err
//	}
//	first := d.Card(0)
//	fmt.Println(first.Title(), len(first.Content()))
//
// Decks are never modified after Load or New returns, so they can be shared
// freely between goroutines.
package deck
