package editline

import "context"

type byteResult struct {
	b   byte
	err error
}

// asyncTerminal lifts a blocking Terminal into the AsyncTerminal
// contract. A pump goroutine performs the blocking byte reads and hands
// them over on an owned channel, which is what makes ReadByte
// cancellable; everything else delegates after a cancellation check.
type asyncTerminal struct {
	term    Terminal
	bytes   chan byteResult
	started bool
	lastErr error
}

// NewAsyncTerminal wraps a blocking Terminal for use with an
// AsyncLineEditor. The wrapper is designed for one logical task at a
// time, like the editor itself. The pump goroutine it starts on first
// read exits once the underlying ReadByte fails (including end of
// input), and the failure is replayed to every later read.
func NewAsyncTerminal(term Terminal) AsyncTerminal {
	return &asyncTerminal{
		term:  term,
		bytes: make(chan byteResult, 16),
	}
}

func (a *asyncTerminal) pump() {
	for {
		b, err := a.term.ReadByte()
		a.bytes <- byteResult{b: b, err: err}
		if err != nil {
			return
		}
	}
}

func (a *asyncTerminal) ReadByte(ctx context.Context) (byte, error) {
	if a.lastErr != nil {
		return 0, a.lastErr
	}
	if !a.started {
		a.started = true
		go a.pump()
	}
	select {
	case r := <-a.bytes:
		if r.err != nil {
			a.lastErr = r.err
		}
		return r.b, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (a *asyncTerminal) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.term.Write(data)
}

func (a *asyncTerminal) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.term.Flush()
}

func (a *asyncTerminal) EnterRawMode(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.term.EnterRawMode()
}

// ExitRawMode restores the terminal regardless of ctx; teardown must run
// even when the read was cancelled.
func (a *asyncTerminal) ExitRawMode(ctx context.Context) error {
	return a.term.ExitRawMode()
}

func (a *asyncTerminal) CursorLeft(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.term.CursorLeft()
}

func (a *asyncTerminal) CursorRight(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.term.CursorRight()
}

func (a *asyncTerminal) ClearEOL(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.term.ClearEOL()
}

func (a *asyncTerminal) ReadKeyEvent(ctx context.Context) (KeyEvent, error) {
	return DecodeKeyEvent(func() (byte, error) {
		return a.ReadByte(ctx)
	})
}
