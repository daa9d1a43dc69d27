package editline

import "errors"

var (
	// ErrEndOfInput is returned when the input source has been closed,
	// typically Ctrl-D on an interactive terminal.
	ErrEndOfInput = errors.New("editline: end of input")

	// ErrInterrupted is returned when the user cancels the line being
	// edited, typically Ctrl-C.
	ErrInterrupted = errors.New("editline: interrupted")

	// ErrInvalidUTF8 is returned when buffer contents or an input byte
	// sequence do not form valid UTF-8.
	ErrInvalidUTF8 = errors.New("editline: invalid UTF-8")
)

// IOError wraps a read or write failure at the terminal boundary with the
// operation that produced it.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return "editline: " + e.Op + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }
