package editline

import (
	"bufio"
	"errors"
	"io"
)

// SerialTerminal adapts a byte-oriented link (a UART, a USB CDC device,
// a network connection) to the Terminal contract. The link is
// assumed to already deliver raw bytes, so the raw-mode toggles do
// nothing, and the remote end is expected to interpret ANSI escape
// sequences for cursor motion.
//
// Each instance owns its receive and transmit buffers exclusively;
// nothing is shared between instances or stashed in package state.
type SerialTerminal struct {
	rx *bufio.Reader
	tx *bufio.Writer
}

func NewSerialTerminal(r io.Reader, w io.Writer) *SerialTerminal {
	return &SerialTerminal{
		rx: bufio.NewReaderSize(r, 64),
		tx: bufio.NewWriterSize(w, 256),
	}
}

func (t *SerialTerminal) ReadByte() (byte, error) {
	b, err := t.rx.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrEndOfInput
		}
		return 0, &IOError{Op: "serial read", Err: err}
	}
	return b, nil
}

func (t *SerialTerminal) Write(data []byte) error {
	if _, err := t.tx.Write(data); err != nil {
		return &IOError{Op: "serial write", Err: err}
	}
	return nil
}

func (t *SerialTerminal) Flush() error {
	if err := t.tx.Flush(); err != nil {
		return &IOError{Op: "serial flush", Err: err}
	}
	return nil
}

// EnterRawMode is a no-op; a serial link has no line discipline to turn off.
func (t *SerialTerminal) EnterRawMode() error { return nil }

func (t *SerialTerminal) ExitRawMode() error { return nil }

func (t *SerialTerminal) CursorLeft() error { return t.Write([]byte("\x1b[D")) }

func (t *SerialTerminal) CursorRight() error { return t.Write([]byte("\x1b[C")) }

func (t *SerialTerminal) ClearEOL() error { return t.Write([]byte("\x1b[K")) }

func (t *SerialTerminal) ReadKeyEvent() (KeyEvent, error) {
	return DecodeKeyEvent(t.ReadByte)
}
