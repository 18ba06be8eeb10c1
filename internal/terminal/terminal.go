package terminal

import (
	"fmt"
	"time"
)

// Surface is a cursor-addressable, buffered text sink. Nothing written
// through it is visible until Flush succeeds.
type Surface interface {
	Clear() error
	MoveTo(x, y int) error
	Print(s string) error
	Flush() error
}

// Terminal is the full set of terminal capabilities the viewer needs.
type Terminal interface {
	Surface

	// Size returns the current width and height in character cells.
	Size() (width, height int, err error)

	// EnableRaw switches input to raw (unbuffered, no echo) mode.
	EnableRaw() error

	// DisableRaw restores the input mode that was active before EnableRaw.
	DisableRaw() error

	// Poll returns the next pending event. It waits at most timeout; a zero
	// timeout never blocks. ok is false when no event arrived in time.
	Poll(timeout time.Duration) (ev Event, ok bool, err error)
}

// EventKind distinguishes keyboard input from resize notifications.
type EventKind int

const (
	// EventKey is a key press.
	EventKey EventKind = iota
	// EventResize reports new terminal dimensions.
	EventResize
)

// Key identifies a non-printable key, or KeyRune for printable input.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyEscape
)

var keyNames = map[Key]string{
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
}

// Event is a single input or resize notification.
type Event struct {
	Kind EventKind
	Key  Key
	Rune rune // set when Key is KeyRune

	Width  int // set for EventResize
	Height int // set for EventResize
}

// KeyEvent builds a key event for a non-printable key.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// RuneEvent builds a key event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Kind: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent builds a resize notification.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// String returns the key name used by key bindings, such as "left",
// "shift+tab" or "q". Resize events render as "resize WxH".
func (e Event) String() string {
	if e.Kind == EventResize {
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	if name, ok := keyNames[e.Key]; ok {
		return name
	}
	return "unknown"
}
