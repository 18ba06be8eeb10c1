package viewer

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/flashdeck/internal/deck"
	"github.com/muurk/flashdeck/internal/logging"
	"github.com/muurk/flashdeck/internal/terminal"
)

// DefaultInterval is the pause between frames, about 60 redraws a second.
const DefaultInterval = 16 * time.Millisecond

// Config holds the loop settings. Zero fields take defaults.
type Config struct {
	// Interval is the sleep after every frame.
	Interval time.Duration
	// Keys maps key presses to navigation actions.
	Keys *KeyMap
	// Exit terminates the process after a quit. It runs after the terminal
	// has been restored. Defaults to os.Exit.
	Exit func(code int)
	// Sleep pauses between ticks. Defaults to time.Sleep.
	Sleep func(d time.Duration)
}

// Loop is the single-threaded poll, render, sleep cycle.
type Loop struct {
	term  terminal.Terminal
	deck  *deck.Deck
	nav   *Navigator
	frame Frame

	interval time.Duration
	keys     KeyMap
	exit     func(int)
	sleep    func(time.Duration)

	session *terminal.Session
}

// NewLoop prepares a loop over d. It rejects a nil or empty deck before any
// terminal state is touched.
func NewLoop(term terminal.Terminal, d *deck.Deck, config Config) (*Loop, error) {
	if d == nil {
		return nil, deck.ErrEmptyDeck
	}
	nav, err := NewNavigator(d.Len())
	if err != nil {
		return nil, err
	}

	l := &Loop{
		term:     term,
		deck:     d,
		nav:      nav,
		interval: config.Interval,
		keys:     DefaultKeyMap(),
		exit:     config.Exit,
		sleep:    config.Sleep,
	}
	if l.interval <= 0 {
		l.interval = DefaultInterval
	}
	if config.Keys != nil {
		l.keys = *config.Keys
	}
	if l.exit == nil {
		l.exit = os.Exit
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}

	return l, nil
}

// Index returns the cursor position.
func (l *Loop) Index() int {
	return l.nav.Index()
}

// Frame returns the current terminal dimensions.
func (l *Loop) Frame() Frame {
	return l.frame
}

// Run takes the terminal into raw mode and draws frames until the quit key
// is pressed or a terminal operation fails.
//
// On quit, raw mode is released and the Exit hook is called with status 0;
// with the default hook Run never returns. On failure, raw mode is released
// before the error is returned. A panic inside the loop also releases raw
// mode on its way out.
func (l *Loop) Run() (err error) {
	sess, err := terminal.Acquire(l.term)
	if err != nil {
		return err
	}
	l.session = sess
	logging.LogSession("acquired", zap.Int("cards", l.deck.Len()))

	defer func() {
		rerr := l.release()
		if rerr == nil {
			return
		}
		if err == nil {
			err = rerr
			return
		}
		logging.Warn("Terminal not restored after loop failure", zap.Error(rerr))
	}()

	w, h, err := l.term.Size()
	if err != nil {
		return terminal.Wrap(terminal.OpSize, err)
	}
	l.frame = NewFrame(w, h)

	for {
		quit, err := l.tick()
		if err != nil {
			logging.Error("Render loop aborted", zap.Error(err))
			return err
		}
		if quit {
			if err := l.release(); err != nil {
				return err
			}
			l.exit(0)
			return nil
		}
		l.sleep(l.interval)
	}
}

// tick drains every pending event, then renders once. It reports quit as
// soon as the quit key is seen; events queued behind it are discarded.
func (l *Loop) tick() (quit bool, err error) {
	for {
		ev, ok, err := l.term.Poll(0)
		if err != nil {
			return false, terminal.Wrap(terminal.OpPoll, err)
		}
		if !ok {
			break
		}
		if l.handle(ev) {
			return true, nil
		}
	}

	card := l.deck.Card(l.nav.Index())
	return false, Render(l.term, ComputeLayout(l.frame, card), card)
}

// handle applies one event and reports whether it was a quit. A quit ends
// input handling at once; Run then restores the terminal and exits the
// process without returning to the caller.
func (l *Loop) handle(ev terminal.Event) bool {
	if ev.Kind == terminal.EventResize {
		l.frame.Resize(ev.Width, ev.Height)
		logging.LogResize(l.frame.Width, l.frame.Height)
		return false
	}

	action := l.keys.Action(ev)
	if action == ActionQuit {
		return true
	}

	from := l.nav.Index()
	if l.nav.Apply(action) {
		logging.LogNavigation(ev.String(), from, l.nav.Index(), l.nav.Count())
	}
	return false
}

func (l *Loop) release() error {
	if l.session == nil || l.session.Released() {
		return nil
	}
	err := l.session.Release()
	logging.LogSession("released", zap.Error(err))
	return err
}
