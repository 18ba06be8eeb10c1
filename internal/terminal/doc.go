// Package terminal abstracts the terminal device used by the card viewer.
//
// The Terminal interface covers four capabilities:
//
//   - Size: current width and height in character cells
//   - Raw mode: EnableRaw / DisableRaw around the viewing session
//   - Events: Poll for the next key or resize, with a timeout (zero never blocks)
//   - Output: a buffered Surface (Clear, MoveTo, Print) made visible by Flush
//
// Tcell is the production implementation, built on github.com/gdamore/tcell/v2.
// Tests substitute a recording fake.
//
// # Raw Mode Lifecycle
//
// Raw mode is process-wide state. Session turns it into a scoped resource:
//
//	sess, err := terminal.Acquire(term)
//	if err != nil {
//	    return err
//	}
//	defer sess.Release()
//
// Release is idempotent, so an explicit Release before os.Exit and the
// deferred one never double-restore the terminal.
//
// # Errors
//
// Every capability failure is reported as *Error carrying the failed Op.
// Failures are not retried.
package terminal
