package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/muurk/flashdeck/internal/terminal"
)

var errScriptExhausted = errors.New("mock terminal: event script exhausted")

// drawOp is one MoveTo+Print pair seen by the mock.
type drawOp struct {
	X, Y int
	Text string
}

// mockTerminal replays scripted event batches, one batch per tick, and
// records everything the loop does to it.
type mockTerminal struct {
	width, height int

	batches [][]terminal.Event
	batch   int

	calls  []string // "enable", "disable", "clear", "flush", "exit"
	frames [][]drawOp

	pending []drawOp
	x, y    int

	sizeErr    error
	flushErr   error
	disableErr error
	panicOn    string // Print text that triggers a panic
}

func newMockTerminal(width, height int, batches ...[]terminal.Event) *mockTerminal {
	return &mockTerminal{width: width, height: height, batches: batches}
}

func (m *mockTerminal) EnableRaw() error {
	m.calls = append(m.calls, "enable")
	return nil
}

func (m *mockTerminal) DisableRaw() error {
	m.calls = append(m.calls, "disable")
	return m.disableErr
}

func (m *mockTerminal) Size() (int, int, error) {
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.width, m.height, nil
}

// Poll hands out the current batch one event at a time. An empty batch ends
// the drain for this tick and moves the script on to the next batch.
func (m *mockTerminal) Poll(time.Duration) (terminal.Event, bool, error) {
	if m.batch >= len(m.batches) {
		return terminal.Event{}, false, errScriptExhausted
	}
	if len(m.batches[m.batch]) == 0 {
		m.batch++
		return terminal.Event{}, false, nil
	}
	ev := m.batches[m.batch][0]
	m.batches[m.batch] = m.batches[m.batch][1:]
	return ev, true, nil
}

func (m *mockTerminal) Clear() error {
	m.calls = append(m.calls, "clear")
	m.pending = nil
	return nil
}

func (m *mockTerminal) MoveTo(x, y int) error {
	m.x, m.y = x, y
	return nil
}

func (m *mockTerminal) Print(s string) error {
	if m.panicOn != "" && s == m.panicOn {
		panic(fmt.Sprintf("mock terminal: print %q", s))
	}
	m.pending = append(m.pending, drawOp{X: m.x, Y: m.y, Text: s})
	return nil
}

func (m *mockTerminal) Flush() error {
	if m.flushErr != nil {
		return m.flushErr
	}
	m.calls = append(m.calls, "flush")
	m.frames = append(m.frames, m.pending)
	m.pending = nil
	return nil
}

func (m *mockTerminal) count(call string) int {
	n := 0
	for _, c := range m.calls {
		if c == call {
			n++
		}
	}
	return n
}

// lastIndex returns the position of the last occurrence of call, or -1.
func (m *mockTerminal) lastIndex(call string) int {
	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i] == call {
			return i
		}
	}
	return -1
}

// textAt returns the text printed at row y in frame f, or "".
func (m *mockTerminal) textAt(f, y int) string {
	for _, op := range m.frames[f] {
		if op.Y == y {
			return op.Text
		}
	}
	return ""
}

// exitRecorder is an Exit hook that notes the call in the mock's log.
func (m *mockTerminal) exitRecorder(code *int) func(int) {
	return func(c int) {
		*code = c
		m.calls = append(m.calls, "exit")
	}
}

func noSleep(time.Duration) {}
