package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/flashdeck/internal/deck"
	"github.com/muurk/flashdeck/internal/terminal"
)

// Action is what a key press asks the navigator to do.
type Action int

const (
	ActionNone Action = iota
	ActionPrevious
	ActionNext
	ActionQuit
)

// String returns a human-readable name for the action
func (a Action) String() string {
	switch a {
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Navigator owns the cursor into the deck. Moves saturate at both ends;
// there is no wraparound.
type Navigator struct {
	index int
	count int
}

// NewNavigator returns a navigator over count cards positioned on the first.
func NewNavigator(count int) (*Navigator, error) {
	if count < 1 {
		return nil, deck.ErrEmptyDeck
	}
	return &Navigator{count: count}, nil
}

// Index returns the current cursor position.
func (n *Navigator) Index() int {
	return n.index
}

// Count returns the number of cards being navigated.
func (n *Navigator) Count() int {
	return n.count
}

// Apply performs a Previous or Next move and reports whether the cursor
// changed. Other actions leave the cursor alone.
func (n *Navigator) Apply(a Action) bool {
	var delta int
	switch a {
	case ActionPrevious:
		delta = -1
	case ActionNext:
		delta = 1
	default:
		return false
	}

	prev := n.index
	n.index = Clamp(n.index+delta, 0, n.count-1)
	return n.index != prev
}

// KeyMap binds key names (as produced by terminal.Event.String) to actions.
// It satisfies help.KeyMap so the bindings can be printed.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Quit     key.Binding
}

// Default key names for each action.
var (
	DefaultPreviousKeys = []string{"left", "backspace", "shift+tab"}
	DefaultNextKeys     = []string{"right", "enter", "tab"}
	DefaultQuitKeys     = []string{"q"}
)

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(DefaultPreviousKeys, DefaultNextKeys, DefaultQuitKeys)
}

// NewKeyMap builds a key map from key name lists. An empty list keeps the
// default for that action.
func NewKeyMap(previous, next, quit []string) KeyMap {
	if len(previous) == 0 {
		previous = DefaultPreviousKeys
	}
	if len(next) == 0 {
		next = DefaultNextKeys
	}
	if len(quit) == 0 {
		quit = DefaultQuitKeys
	}

	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys(previous...),
			key.WithHelp(JoinKeys(previous), "previous card"),
		),
		Next: key.NewBinding(
			key.WithKeys(next...),
			key.WithHelp(JoinKeys(next), "next card"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quit...),
			key.WithHelp(JoinKeys(quit), "quit"),
		),
	}
}

// Action maps an event to the action it is bound to.
func (k KeyMap) Action(ev terminal.Event) Action {
	if ev.Kind != terminal.EventKey {
		return ActionNone
	}

	switch {
	case key.Matches(ev, k.Quit):
		return ActionQuit
	case key.Matches(ev, k.Previous):
		return ActionPrevious
	case key.Matches(ev, k.Next):
		return ActionNext
	default:
		return ActionNone
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.Quit},
	}
}

// JoinKeys renders key names for help text, using arrows for arrow keys.
func JoinKeys(keys []string) string {
	var joined []string
	for _, name := range keys {
		k := name
		switch name {
		case "left":
			k = "←"
		case "right":
			k = "→"
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		case " ":
			k = "space"
		}
		joined = append(joined, k)
	}
	return strings.Join(joined, "/")
}
