package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOnceModel is a Bubble Tea model that renders once and exits.
// This is used for "run once and exit" output patterns rather than
// interactive TUIs.
type RunOnceModel struct {
	content string
}

// NewRunOnceModel creates a model that will render the given content and exit
func NewRunOnceModel(content string) RunOnceModel {
	return RunOnceModel{content: content}
}

// Init implements tea.Model
func (m RunOnceModel) Init() tea.Cmd {
	// Immediately signal we're done after first render
	return tea.Quit
}

// Update implements tea.Model
func (m RunOnceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View implements tea.Model
func (m RunOnceModel) View() string {
	return m.content
}

// RenderOnce renders content using Bubble Tea's rendering engine and
// immediately exits. Input is not read, so it is safe to call when stdin
// is not a terminal.
func RenderOnce(w io.Writer, content string) error {
	if w == nil {
		w = os.Stdout
	}
	p := tea.NewProgram(NewRunOnceModel(content), tea.WithOutput(w), tea.WithInput(nil))
	_, err := p.Run()
	return err
}

// Printer writes rendered components to a writer. When the writer is not a
// terminal it prints plainly instead of going through Bubble Tea.
type Printer struct {
	out         io.Writer
	width       int
	interactive bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	interactive := false
	if w == nil {
		w = os.Stdout
		interactive = IsInteractive()
	}
	return &Printer{
		out:         w,
		width:       GetTerminalWidth(),
		interactive: interactive,
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the measured width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Show prints a rendered block followed by a newline.
func (p *Printer) Show(content string) error {
	if p.interactive {
		return RenderOnce(p.out, content)
	}
	_, err := fmt.Fprintln(p.out, content)
	return err
}
