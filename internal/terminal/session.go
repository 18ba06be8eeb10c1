package terminal

// Session holds raw mode on a terminal for as long as it is open.
//
// Acquire enables raw mode; Release restores it and is safe to call more
// than once. Callers defer Release right after Acquire so the terminal is
// restored on every exit path, including panics:
//
//	sess, err := terminal.Acquire(t)
//	if err != nil {
//	    return err
//	}
//	defer sess.Release()
type Session struct {
	term     Terminal
	released bool
}

// Acquire enables raw mode on t and returns the guard that undoes it.
func Acquire(t Terminal) (*Session, error) {
	if err := t.EnableRaw(); err != nil {
		return nil, Wrap(OpEnableRaw, err)
	}
	return &Session{term: t}, nil
}

// Release disables raw mode. Only the first call touches the terminal.
func (s *Session) Release() error {
	if s == nil || s.released {
		return nil
	}
	s.released = true
	return Wrap(OpDisableRaw, s.term.DisableRaw())
}

// Released reports whether Release has already run.
func (s *Session) Released() bool {
	return s.released
}
