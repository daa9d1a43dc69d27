//go:build windows

package editline

import (
	"golang.org/x/sys/windows"
)

// termState remembers the console modes in effect before raw mode.
type termState struct {
	inMode  uint32
	outMode uint32
}

func makeRaw(inFd, outFd int) (*termState, error) {
	inHandle := windows.Handle(inFd)
	outHandle := windows.Handle(outFd)

	var inMode, outMode uint32
	if err := windows.GetConsoleMode(inHandle, &inMode); err != nil {
		return nil, err
	}
	if err := windows.GetConsoleMode(outHandle, &outMode); err != nil {
		return nil, err
	}

	// VT input so arrow keys arrive as escape sequences the shared
	// decoder understands; processed input off so Ctrl-C arrives as 0x03.
	newIn := inMode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT)
	newIn |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	newOut := outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING

	if err := windows.SetConsoleMode(inHandle, newIn); err != nil {
		return nil, err
	}
	if err := windows.SetConsoleMode(outHandle, newOut); err != nil {
		windows.SetConsoleMode(inHandle, inMode)
		return nil, err
	}
	return &termState{inMode: inMode, outMode: outMode}, nil
}

func (s *termState) restore(inFd, outFd int) error {
	windows.SetConsoleMode(windows.Handle(inFd), s.inMode)
	return windows.SetConsoleMode(windows.Handle(outFd), s.outMode)
}
