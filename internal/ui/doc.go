// Package ui renders the non-interactive output of the flashdeck CLI.
//
// The viewer itself draws straight to the terminal through package
// terminal. Everything else the CLI prints (the deck listing and the key
// binding help) is built here with Lipgloss and shown through Bubble Tea's
// renderer in a "run once and exit" program.
//
// # Components
//
//   - Header: rounded banner with a title and source paths
//   - RenderDeckSummary: one row per card with number, title and preview
//   - RenderKeyHelp: bubbles/help full view of the viewer key map
//
// # Usage Pattern
//
//	p := ui.NewPrinter(nil)
//	if err := p.Show(ui.RenderDeckSummary(d, paths, p.Width())); err != nil {
//	    return err
//	}
//
// When stdout is not a terminal, Printer skips Bubble Tea and writes the
// rendered text directly, so output can be piped.
package ui
