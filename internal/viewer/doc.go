// Package viewer is the card viewer's render and navigation loop.
//
// # Architecture
//
// Each tick of the Loop runs the same pipeline:
//
//	Poll (drain all pending events)
//	  ├─ resize → Frame.Resize
//	  └─ key    → KeyMap.Action → Navigator.Apply
//	ComputeLayout(Frame, Card) → Layout
//	Render(Surface, Layout, Card) → Clear, draw, Flush
//	Sleep(Interval)
//
// Every event queued before the tick starts is applied before the frame is
// drawn, so rapid key repeats can move several cards in one frame. The frame
// is redrawn every tick whether or not anything changed.
//
// # Navigation
//
// The Navigator holds a single index into the deck. Previous and Next
// saturate at the first and last card; there is no wraparound. Default keys:
//
//	previous: left, backspace, shift+tab
//	next:     right, enter, tab
//	quit:     q
//
// # Layout
//
// ComputeLayout estimates how tall a card will be from its total character
// count and a wrap width of half the frame minus four columns, then places
// the anchor that many rows above the vertical centre. Small frames are
// clamped rather than rejected: the wrap width never drops below 1 and the
// anchor never rises above row 0.
//
// # Terminal Lifecycle
//
// Run holds raw mode through a terminal.Session for its whole lifetime. Quit
// releases it before calling the exit hook; errors and panics release it
// through a deferred call.
package viewer
