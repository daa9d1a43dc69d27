package editline

import (
	"context"
	"strings"
	"unicode/utf8"
)

// AsyncTerminal is the suspend-capable counterpart of Terminal. Every
// operation takes a Context and may park the calling goroutine until the
// underlying I/O is ready, letting the caller's scheduler run other work
// (a USB polling task, for instance) in the meantime.
//
// ExitRawMode must be safe to call even if EnterRawMode never completed.
type AsyncTerminal interface {
	ReadByte(ctx context.Context) (byte, error)
	Write(ctx context.Context, data []byte) error
	Flush(ctx context.Context) error
	EnterRawMode(ctx context.Context) error
	ExitRawMode(ctx context.Context) error
	CursorLeft(ctx context.Context) error
	CursorRight(ctx context.Context) error
	ClearEOL(ctx context.Context) error
	ReadKeyEvent(ctx context.Context) (KeyEvent, error)
}

// AsyncLineEditor reads one edited line at a time from an AsyncTerminal.
// Editing and history semantics are identical to LineEditor; only the
// scheduling model differs. A single logical task owns the editor per
// read, so no internal locking is needed or provided.
type AsyncLineEditor struct {
	line    *LineBuffer
	history *History
}

// NewAsyncLineEditor creates an editor. bufferCapacity is an allocation
// hint for the line buffer; historyCapacity fixes the history ring size.
func NewAsyncLineEditor(bufferCapacity, historyCapacity int) *AsyncLineEditor {
	return &AsyncLineEditor{
		line:    NewLineBuffer(bufferCapacity),
		history: NewHistory(historyCapacity),
	}
}

// History exposes the editor's history store.
func (e *AsyncLineEditor) History() *History { return e.history }

// ReadLine runs one full read to completion: enter raw mode, process key
// events until Enter, commit the trimmed line to history and return it.
// Raw mode is exited before any error is returned, even when ctx is
// already cancelled.
func (e *AsyncLineEditor) ReadLine(ctx context.Context, term AsyncTerminal) (string, error) {
	e.line.Clear()
	if err := term.EnterRawMode(ctx); err != nil {
		return "", err
	}

	line, err := e.edit(ctx, term)

	if rawErr := term.ExitRawMode(context.WithoutCancel(ctx)); err == nil {
		err = rawErr
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (e *AsyncLineEditor) edit(ctx context.Context, term AsyncTerminal) (string, error) {
	for {
		ev, err := term.ReadKeyEvent(ctx)
		if err != nil {
			return "", err
		}
		if ev.Key == KeyEnter {
			break
		}
		if err := e.handleKeyEvent(ctx, term, ev); err != nil {
			return "", err
		}
	}

	// CR+LF so the terminator also works on serial links without ONLCR.
	if err := term.Write(ctx, []byte("\r\n")); err != nil {
		return "", err
	}
	if err := term.Flush(ctx); err != nil {
		return "", err
	}

	text, err := e.line.Text()
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(text)

	e.history.Add(line)
	e.history.ResetView()

	return line, nil
}

func (e *AsyncLineEditor) handleKeyEvent(ctx context.Context, term AsyncTerminal, ev KeyEvent) error {
	switch ev.Key {
	case KeyNormal:
		if ev.Rune == 0 {
			break // no-op sentinel from the decoder
		}
		e.history.ResetView()
		e.line.InsertChar(ev.Rune)
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], ev.Rune)
		if err := term.Write(ctx, enc[:n]); err != nil {
			return err
		}
		if err := e.redrawFromCursor(ctx, term); err != nil {
			return err
		}

	case KeyLeft:
		if e.line.MoveCursorLeft() {
			if err := term.CursorLeft(ctx); err != nil {
				return err
			}
		}

	case KeyRight:
		if e.line.MoveCursorRight() {
			if err := term.CursorRight(ctx); err != nil {
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
			if err := e.loadHistoryIntoLine(ctx, term, text); err != nil {
				return err
			}
		}

	case KeyDown:
		// With no scroll session active this reports nothing and the
		// live line stays untouched.
		if text, ok := e.history.NextEntry(); ok {
			if err := e.loadHistoryIntoLine(ctx, term, text); err != nil {
				return err
			}
		}

	case KeyHome:
		count := e.line.MoveCursorToStart()
		for i := 0; i < count; i++ {
			if err := term.CursorLeft(ctx); err != nil {
				return err
			}
		}

	case KeyEnd:
		count := e.line.MoveCursorToEnd()
		for i := 0; i < count; i++ {
			if err := term.CursorRight(ctx); err != nil {
				return err
			}
		}

	case KeyBackspace:
		e.history.ResetView()
		if e.line.DeleteBeforeCursor() {
			if err := term.CursorLeft(ctx); err != nil {
				return err
			}
			if err := e.redrawFromCursor(ctx, term); err != nil {
				return err
			}
		}

	case KeyDelete:
		e.history.ResetView()
		if e.line.DeleteAtCursor() {
			if err := e.redrawFromCursor(ctx, term); err != nil {
				return err
			}
		}

	case KeyCtrlLeft:
		count := e.line.MoveCursorWordLeft()
		for i := 0; i < count; i++ {
			if err := term.CursorLeft(ctx); err != nil {
				return err
			}
		}

	case KeyCtrlRight:
		count := e.line.MoveCursorWordRight()
		for i := 0; i < count; i++ {
			if err := term.CursorRight(ctx); err != nil {
				return err
			}
		}

	case KeyAltBackspace:
		e.history.ResetView()
		count := e.line.DeleteWordLeft()
		for i := 0; i < count; i++ {
			if err := term.CursorLeft(ctx); err != nil {
				return err
			}
		}
		if err := e.redrawFromCursor(ctx, term); err != nil {
			return err
		}

	case KeyCtrlDelete:
		e.history.ResetView()
		e.line.DeleteWordRight()
		if err := e.redrawFromCursor(ctx, term); err != nil {
			return err
		}

	case KeyEnter:
		// Handled by the read loop.
	}

	return term.Flush(ctx)
}

func (e *AsyncLineEditor) redrawFromCursor(ctx context.Context, term AsyncTerminal) error {
	if err := term.ClearEOL(ctx); err != nil {
		return err
	}

	rest := e.line.Bytes()[e.line.Cursor():]
	if err := term.Write(ctx, rest); err != nil {
		return err
	}
	for i := 0; i < len(rest); i++ {
		if err := term.CursorLeft(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *AsyncLineEditor) clearLineDisplay(ctx context.Context, term AsyncTerminal) error {
	for i := 0; i < e.line.Cursor(); i++ {
		if err := term.CursorLeft(ctx); err != nil {
			return err
		}
	}
	return term.ClearEOL(ctx)
}

func (e *AsyncLineEditor) loadHistoryIntoLine(ctx context.Context, term AsyncTerminal, text string) error {
	if err := e.clearLineDisplay(ctx, term); err != nil {
		return err
	}
	e.line.Load(text)
	return term.Write(ctx, []byte(text))
}
