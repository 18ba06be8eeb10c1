package viewer

import (
	"strings"

	"github.com/muurk/flashdeck/internal/deck"
	"github.com/muurk/flashdeck/internal/terminal"
)

// Render draws one frame of card c at layout l and flushes it. All drawing
// goes to the surface's buffer; only the final Flush makes it visible.
func Render(s terminal.Surface, l Layout, c deck.Card) error {
	if err := s.Clear(); err != nil {
		return terminal.Wrap(terminal.OpDraw, err)
	}

	if c.HasTitle() {
		if err := printAt(s, l.AnchorX, l.AnchorY, c.Title()); err != nil {
			return err
		}
	}

	if err := printAt(s, l.AnchorX, l.RuleRow, strings.Repeat(ruleChar, l.RuleWidth)); err != nil {
		return err
	}

	for i := 0; i < c.Lines(); i++ {
		if err := printAt(s, l.AnchorX, l.ContentRow(i), c.Line(i)); err != nil {
			return err
		}
	}

	// The card number (l.NumberRow) is laid out but not drawn.

	if err := s.Flush(); err != nil {
		return terminal.Wrap(terminal.OpFlush, err)
	}
	return nil
}

func printAt(s terminal.Surface, x, y int, text string) error {
	if err := s.MoveTo(x, y); err != nil {
		return terminal.Wrap(terminal.OpDraw, err)
	}
	if err := s.Print(text); err != nil {
		return terminal.Wrap(terminal.OpDraw, err)
	}
	return nil
}
