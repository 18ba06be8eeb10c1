package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the banner at the top of listing output: a title and the
// sources it describes.
type Header struct {
	Title   string   // e.g., "DECK"
	Sources []string // e.g., ["geography.md", "history.md"]
	Width   int      // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title string, sources []string) *Header {
	return &Header{
		Title:   title,
		Sources: sources,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := max(h.Width, MinTerminalWidth)

	lines := []string{HeaderTitleStyle.Render(strings.ToUpper(h.Title))}
	for _, src := range h.Sources {
		lines = append(lines, HeaderSubtitleStyle.Render(src))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
