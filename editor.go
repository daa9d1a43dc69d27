// Package editline is a platform-agnostic line-editing engine: it turns a
// raw byte stream of keystrokes into an edited line of UTF-8 text, with
// cursor movement, word-wise editing and recall of previously entered
// lines. I/O is fully separated from editing logic behind the Terminal
// interface, so the same engine drives standard terminals, serial links
// and anything else that can move bytes.
package editline

import (
	"strings"
	"unicode/utf8"
)

// Terminal is the I/O contract a platform backend supplies to the
// blocking editor. Implementations translate their native input encoding
// into key events (DecodeKeyEvent does the heavy lifting for ANSI byte
// streams) and provide raw-mode toggling plus single-step cursor motion.
//
// ExitRawMode must be safe to call even if EnterRawMode never completed.
type Terminal interface {
	// ReadByte fetches one raw input byte, blocking until available.
	ReadByte() (byte, error)

	// Write sends raw bytes to the output.
	Write(data []byte) error

	// Flush pushes out any buffered output.
	Flush() error

	// EnterRawMode disables host-side line buffering and echo.
	EnterRawMode() error

	// ExitRawMode restores the settings in effect before EnterRawMode.
	ExitRawMode() error

	// CursorLeft moves the visible cursor left one column.
	CursorLeft() error

	// CursorRight moves the visible cursor right one column.
	CursorRight() error

	// ClearEOL erases from the cursor to the end of the visible line.
	ClearEOL() error

	// ReadKeyEvent consumes one or more raw bytes and produces exactly
	// one key event.
	ReadKeyEvent() (KeyEvent, error)
}

// LineEditor reads one edited line at a time from a Terminal. It owns a
// line buffer and a history store; nothing else persists between calls.
// A LineEditor must not be used for concurrent ReadLine calls.
type LineEditor struct {
	line    *LineBuffer
	history *History
}

// NewLineEditor creates an editor. bufferCapacity is an allocation hint
// for the line buffer; historyCapacity fixes the history ring size.
func NewLineEditor(bufferCapacity, historyCapacity int) *LineEditor {
	return &LineEditor{
		line:    NewLineBuffer(bufferCapacity),
		history: NewHistory(historyCapacity),
	}
}

// History exposes the editor's history store, e.g. for seeding entries
// before the first read.
func (e *LineEditor) History() *History { return e.history }

// ReadLine runs one full read: enter raw mode, process key events until
// Enter, commit the trimmed line to history and return it. Raw mode is
// exited before any error is returned, no matter where it originated.
func (e *LineEditor) ReadLine(term Terminal) (string, error) {
	e.line.Clear()
	if err := term.EnterRawMode(); err != nil {
		return "", err
	}

	line, err := e.edit(term)

	if rawErr := term.ExitRawMode(); err == nil {
		err = rawErr
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (e *LineEditor) edit(term Terminal) (string, error) {
	for {
		ev, err := term.ReadKeyEvent()
		if err != nil {
			return "", err
		}
		if ev.Key == KeyEnter {
			break
		}
		if err := e.handleKeyEvent(term, ev); err != nil {
			return "", err
		}
	}

	// CR+LF so the terminator also works on serial links without ONLCR.
	if err := term.Write([]byte("\r\n")); err != nil {
		return "", err
	}
	if err := term.Flush(); err != nil {
		return "", err
	}

	text, err := e.line.Text()
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(text)

	// Add drops empty and duplicate lines itself.
	e.history.Add(line)
	e.history.ResetView()

	return line, nil
}

func (e *LineEditor) handleKeyEvent(term Terminal, ev KeyEvent) error {
	switch ev.Key {
	case KeyNormal:
		if ev.Rune == 0 {
			break // no-op sentinel from the decoder
		}
		e.history.ResetView()
		e.line.InsertChar(ev.Rune)
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], ev.Rune)
		if err := term.Write(enc[:n]); err != nil {
			return err
		}
		if err := e.redrawFromCursor(term); err != nil {
			return err
		}

	case KeyLeft:
		if e.line.MoveCursorLeft() {
			if err := term.CursorLeft(); err != nil {
				return err
			}
		}

	case KeyRight:
		if e.line.MoveCursorRight() {
			if err := term.CursorRight(); err != nil {
				return err
			}
		}

	case KeyUp:
		// A transiently invalid buffer (partial multi-byte backspace)
		// stashes as empty rather than aborting the read.
		current, err := e.line.Text()
		if err != nil {
			current = ""
		}
		if text, ok := e.history.Previous(current); ok {
			if err := e.loadHistoryIntoLine(term, text); err != nil {
				return err
			}
		}

	case KeyDown:
		// With no scroll session active this reports nothing and the
		// live line stays untouched.
		if text, ok := e.history.NextEntry(); ok {
			if err := e.loadHistoryIntoLine(term, text); err != nil {
				return err
			}
		}

	case KeyHome:
		count := e.line.MoveCursorToStart()
		for i := 0; i < count; i++ {
			if err := term.CursorLeft(); err != nil {
				return err
			}
		}

	case KeyEnd:
		count := e.line.MoveCursorToEnd()
		for i := 0; i < count; i++ {
			if err := term.CursorRight(); err != nil {
				return err
			}
		}

	case KeyBackspace:
		e.history.ResetView()
		if e.line.DeleteBeforeCursor() {
			if err := term.CursorLeft(); err != nil {
				return err
			}
			if err := e.redrawFromCursor(term); err != nil {
				return err
			}
		}

	case KeyDelete:
		e.history.ResetView()
		if e.line.DeleteAtCursor() {
			if err := e.redrawFromCursor(term); err != nil {
				return err
			}
		}

	case KeyCtrlLeft:
		count := e.line.MoveCursorWordLeft()
		for i := 0; i < count; i++ {
			if err := term.CursorLeft(); err != nil {
				return err
			}
		}

	case KeyCtrlRight:
		count := e.line.MoveCursorWordRight()
		for i := 0; i < count; i++ {
			if err := term.CursorRight(); err != nil {
				return err
			}
		}

	case KeyAltBackspace:
		e.history.ResetView()
		count := e.line.DeleteWordLeft()
		for i := 0; i < count; i++ {
			if err := term.CursorLeft(); err != nil {
				return err
			}
		}
		if err := e.redrawFromCursor(term); err != nil {
			return err
		}

	case KeyCtrlDelete:
		e.history.ResetView()
		e.line.DeleteWordRight()
		if err := e.redrawFromCursor(term); err != nil {
			return err
		}

	case KeyEnter:
		// Handled by the read loop.
	}

	return term.Flush()
}

// redrawFromCursor repaints only the line suffix after a local edit:
// erase to end of line, rewrite the tail, then step the visible cursor
// back over it. Correct for insert-in-middle without a full repaint.
func (e *LineEditor) redrawFromCursor(term Terminal) error {
	if err := term.ClearEOL(); err != nil {
		return err
	}

	rest := e.line.Bytes()[e.line.Cursor():]
	if err := term.Write(rest); err != nil {
		return err
	}
	for i := 0; i < len(rest); i++ {
		if err := term.CursorLeft(); err != nil {
			return err
		}
	}
	return nil
}

func (e *LineEditor) clearLineDisplay(term Terminal) error {
	for i := 0; i < e.line.Cursor(); i++ {
		if err := term.CursorLeft(); err != nil {
			return err
		}
	}
	return term.ClearEOL()
}

func (e *LineEditor) loadHistoryIntoLine(term Terminal, text string) error {
	if err := e.clearLineDisplay(term); err != nil {
		return err
	}
	e.line.Load(text)
	return term.Write([]byte(text))
}
