package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flashdeck/internal/deck"
)

// untitled is shown in place of a missing card title.
const untitled = "(untitled)"

// RenderDeckSummary renders one row per card: number, title and a short
// preview of its content, inside a header naming the sources.
func RenderDeckSummary(d *deck.Deck, sources []string, width int) string {
	width = max(width, MinTerminalWidth)

	rows := make([]string, 0, d.Len())
	for _, c := range d.Cards() {
		rows = append(rows, renderCardRow(c))
	}

	body := BoxStyle(width).Render(strings.Join(rows, "\n"))
	footer := FooterStyle.Render(fmt.Sprintf("%d card(s)", d.Len()))

	return lipgloss.JoinVertical(lipgloss.Left,
		NewHeader("Deck", sources).SetWidth(width).Render(),
		body,
		footer,
	)
}

func renderCardRow(c deck.Card) string {
	title := c.Title()
	if !c.HasTitle() {
		title = untitled
	}

	number := CardNumberStyle.Render(fmt.Sprintf("#%d", c.Number()))
	row := number + CardTitleStyle.Render(title)

	if preview := Preview(c.Content(), PreviewLength); preview != "" {
		row += "\n" + strings.Repeat(" ", 6) + CardPreviewStyle.Render(preview)
	}
	return row
}

// Preview joins non-empty lines with spaces and truncates the result to
// limit characters, marking truncation with "...".
func Preview(lines []string, limit int) string {
	var parts []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	joined := []rune(strings.Join(parts, " "))
	if len(joined) <= limit {
		return string(joined)
	}
	if limit <= 3 {
		return string(joined[:limit])
	}
	return string(joined[:limit-3]) + "..."
}
