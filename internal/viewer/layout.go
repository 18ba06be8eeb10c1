package viewer

import "github.com/muurk/flashdeck/internal/deck"

const (
	// wrapMargin is subtracted from half the width to get the wrap column count.
	wrapMargin = 4
	// titleRows is the title line plus the rule beneath it.
	titleRows = 2
	// cardPadding is the fixed vertical allowance for borders and spacing.
	cardPadding = 4
	// ruleChar draws the horizontal separator.
	ruleChar = "-"
)

// Layout is where one frame of a card goes. It is derived fresh from the
// Frame and Card every tick and never stored.
type Layout struct {
	AnchorX         int
	AnchorY         int
	EstimatedHeight int

	WrapWidth   int // columns content is assumed to wrap within
	TitleOffset int // rows between the anchor and the first content line
	RuleRow     int
	RuleWidth   int

	// NumberRow is where a card number footer would go. Nothing draws it.
	NumberRow int
}

// ComputeLayout positions card c inside frame f so that it sits roughly in
// the vertical centre. It is a pure function of its arguments.
//
// Narrow frames clamp the wrap width to 1, and cards taller than half the
// frame are pinned to row 0.
func ComputeLayout(f Frame, c deck.Card) Layout {
	wrapWidth := max(f.Width/2-wrapMargin, 1)
	estLines := c.ContentLength() / wrapWidth

	titleOffset := 0
	if c.HasTitle() {
		titleOffset = titleRows
	}

	height := estLines + titleOffset + cardPadding
	anchorY := max(f.Height/2-height, 0)

	ruleRow := anchorY
	if c.HasTitle() {
		ruleRow = anchorY + 1
	}

	return Layout{
		AnchorX:         (f.Width / 4) / 2,
		AnchorY:         anchorY,
		EstimatedHeight: height,
		WrapWidth:       wrapWidth,
		TitleOffset:     titleOffset,
		RuleRow:         ruleRow,
		RuleWidth:       f.Width - f.Width/4,
		NumberRow:       anchorY + titleOffset + estLines + 2,
	}
}

// ContentRow returns the screen row of content line i.
func (l Layout) ContentRow(i int) int {
	return l.AnchorY + l.TitleOffset + i
}
