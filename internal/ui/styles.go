package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for listing output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	AccentColor  = lipgloss.Color("#43BF6D") // Green - card numbers, key names
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	PreviewLength    = 48  // Characters of content shown per card
)

var (
	// HeaderTitleStyle is for the listing title (e.g., "DECK")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderSubtitleStyle is for the source paths under the title
	HeaderSubtitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// CardNumberStyle is for the "#3" column
	CardNumberStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Width(6)

	// CardTitleStyle is for card titles
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// CardPreviewStyle is for the first content characters of a card
	CardPreviewStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// FooterStyle is for totals and hints at the end of output
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)
)

// BoxStyle returns the rounded border used around listings.
func BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2). // Account for border characters
		Padding(0, 1)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return ClampWidth(width, err)
}

// ClampWidth bounds a measured width to the supported range. A measurement
// error yields the minimum.
func ClampWidth(width int, err error) int {
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
