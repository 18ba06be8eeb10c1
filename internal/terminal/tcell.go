package terminal

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// pollInterval is how often Poll re-checks the queue when given a timeout.
const pollInterval = time.Millisecond

// errNotStarted is returned for screen operations before EnableRaw.
var errNotStarted = errors.New("screen not initialised")

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

// Tcell is the production Terminal backed by a tcell screen.
//
// tcell only learns the terminal size once the screen is initialised, so
// EnableRaw must run before Size.
type Tcell struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewTcell returns a terminal that has not yet touched the device.
func NewTcell() *Tcell {
	return &Tcell{style: tcell.StyleDefault}
}

// EnableRaw initialises the tcell screen, which puts the tty in raw mode.
func (t *Tcell) EnableRaw() error {
	if t.screen != nil {
		return nil
	}

	screen, err := newScreen()
	if err != nil {
		return wrap(OpEnableRaw, err)
	}
	if err := screen.Init(); err != nil {
		return wrap(OpEnableRaw, err)
	}
	screen.HideCursor()

	t.screen = screen
	return nil
}

// DisableRaw finalises the screen and restores the previous tty mode.
func (t *Tcell) DisableRaw() error {
	if t.screen == nil {
		return nil
	}
	t.screen.Fini()
	t.screen = nil
	return nil
}

// Size returns the current screen size.
func (t *Tcell) Size() (int, int, error) {
	if t.screen == nil {
		return 0, 0, wrap(OpSize, errNotStarted)
	}
	w, h := t.screen.Size()
	return w, h, nil
}

// Poll drains tcell's queue until it finds a key or resize event. Other
// event types (mouse, focus, paste) are consumed and dropped.
func (t *Tcell) Poll(timeout time.Duration) (Event, bool, error) {
	if t.screen == nil {
		return Event{}, false, wrap(OpPoll, errNotStarted)
	}

	deadline := time.Now().Add(timeout)
	for {
		for t.screen.HasPendingEvent() {
			raw := t.screen.PollEvent()
			if raw == nil {
				return Event{}, false, wrap(OpPoll, errors.New("screen closed"))
			}
			if _, ok := raw.(*tcell.EventResize); ok {
				t.screen.Sync()
			}
			if ev, ok := translate(raw); ok {
				return ev, true, nil
			}
		}

		if timeout <= 0 || !time.Now().Before(deadline) {
			return Event{}, false, nil
		}
		time.Sleep(pollInterval)
	}
}

// translate maps a tcell event onto an Event. ok is false for event types
// the viewer does not handle.
func translate(raw tcell.Event) (Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent(w, h), true

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return RuneEvent(ev.Rune()), true
		case tcell.KeyLeft:
			return KeyEvent(KeyLeft), true
		case tcell.KeyRight:
			return KeyEvent(KeyRight), true
		case tcell.KeyUp:
			return KeyEvent(KeyUp), true
		case tcell.KeyDown:
			return KeyEvent(KeyDown), true
		case tcell.KeyEnter:
			return KeyEvent(KeyEnter), true
		case tcell.KeyTab:
			return KeyEvent(KeyTab), true
		case tcell.KeyBacktab:
			return KeyEvent(KeyBackTab), true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return KeyEvent(KeyBackspace), true
		case tcell.KeyEscape:
			return KeyEvent(KeyEscape), true
		default:
			return KeyEvent(KeyUnknown), true
		}
	}
	return Event{}, false
}

// Clear blanks the back buffer.
func (t *Tcell) Clear() error {
	if t.screen == nil {
		return wrap(OpDraw, errNotStarted)
	}
	t.screen.Clear()
	return nil
}

// MoveTo sets the position of the next Print.
func (t *Tcell) MoveTo(x, y int) error {
	if t.screen == nil {
		return wrap(OpDraw, errNotStarted)
	}
	t.x, t.y = x, y
	return nil
}

// Print writes s at the current position and advances it. Cells outside
// the screen are dropped by tcell.
func (t *Tcell) Print(s string) error {
	if t.screen == nil {
		return wrap(OpDraw, errNotStarted)
	}
	for _, r := range s {
		if r < ' ' {
			r = ' '
		}
		t.screen.SetContent(t.x, t.y, r, nil, t.style)

		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		t.x += w
	}
	return nil
}

// Flush makes the back buffer visible in one update.
func (t *Tcell) Flush() error {
	if t.screen == nil {
		return wrap(OpFlush, errNotStarted)
	}
	t.screen.Show()
	return nil
}
