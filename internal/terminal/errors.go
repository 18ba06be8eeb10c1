package terminal

import "fmt"

// Op names the terminal operation that failed.
type Op string

const (
	OpSize       Op = "size"
	OpEnableRaw  Op = "enable-raw"
	OpDisableRaw Op = "disable-raw"
	OpPoll       Op = "poll"
	OpDraw       Op = "draw"
	OpFlush      Op = "flush"
)

// Error is a terminal capability failure. These are never retried; a local
// terminal that fails once is treated as gone.
type Error struct {
	Op  Op
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// wrap returns nil for a nil err, otherwise an *Error for op.
func wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// Wrap tags err with op. Errors that are already *Error pass through.
func Wrap(op Op, err error) error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return wrap(op, err)
}
