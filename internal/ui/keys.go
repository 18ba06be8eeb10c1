package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeyHelp renders the full help view for km under a header.
func RenderKeyHelp(km help.KeyMap, width int) string {
	width = max(width, MinTerminalWidth)

	h := help.New()
	h.Width = width
	h.ShowAll = true

	return lipgloss.JoinVertical(lipgloss.Left,
		NewHeader("Keys", nil).SetWidth(width).Render(),
		BoxStyle(width).Render(h.View(km)),
	)
}
