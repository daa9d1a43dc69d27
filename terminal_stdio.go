package editline

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// StdioTerminal drives the host terminal on stdin/stdout: termios raw
// mode and ANSI escape sequences on Unix, console-mode toggles with VT
// processing enabled on Windows.
type StdioTerminal struct {
	in    *bufio.Reader
	out   *bufio.Writer
	inFd  int
	outFd int
	saved *termState
}

// NewStdioTerminal fails when stdin is not attached to a terminal; pipe
// input has no raw mode to enter and no cursor to move.
func NewStdioTerminal() (*StdioTerminal, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, &IOError{Op: "stdio", Err: errors.New("stdin is not a terminal")}
	}
	return &StdioTerminal{
		in:    bufio.NewReader(os.Stdin),
		out:   bufio.NewWriter(os.Stdout),
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}, nil
}

func (t *StdioTerminal) ReadByte() (byte, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrEndOfInput
		}
		return 0, &IOError{Op: "read", Err: err}
	}
	return b, nil
}

func (t *StdioTerminal) Write(data []byte) error {
	if _, err := t.out.Write(data); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (t *StdioTerminal) Flush() error {
	if err := t.out.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}

// EnterRawMode switches the terminal to character-at-a-time input with
// echo off. Idempotent; a second call while raw is a no-op.
func (t *StdioTerminal) EnterRawMode() error {
	if t.saved != nil {
		return nil
	}
	st, err := makeRaw(t.inFd, t.outFd)
	if err != nil {
		return &IOError{Op: "enter raw mode", Err: err}
	}
	t.saved = st
	return nil
}

// ExitRawMode restores the saved terminal settings. Safe to call when raw
// mode was never entered.
func (t *StdioTerminal) ExitRawMode() error {
	if t.saved == nil {
		return nil
	}
	err := t.saved.restore(t.inFd, t.outFd)
	t.saved = nil
	if err != nil {
		return &IOError{Op: "exit raw mode", Err: err}
	}
	return nil
}

func (t *StdioTerminal) CursorLeft() error { return t.Write([]byte("\x1b[D")) }

func (t *StdioTerminal) CursorRight() error { return t.Write([]byte("\x1b[C")) }

func (t *StdioTerminal) ClearEOL() error { return t.Write([]byte("\x1b[K")) }

func (t *StdioTerminal) ReadKeyEvent() (KeyEvent, error) {
	return DecodeKeyEvent(t.ReadByte)
}
