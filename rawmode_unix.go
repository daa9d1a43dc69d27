//go:build linux || darwin

package editline

import (
	"golang.org/x/sys/unix"
)

// termState remembers the termios settings in effect before raw mode.
type termState struct {
	termios unix.Termios
}

func makeRaw(inFd, outFd int) (*termState, error) {
	tio, err := getTermios(inFd)
	if err != nil {
		return nil, err
	}
	saved := *tio

	// Character-at-a-time input, no echo. ISIG is cleared too so Ctrl-C
	// reaches the key decoder instead of raising SIGINT.
	tio.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0

	if err := setTermios(inFd, tio); err != nil {
		return nil, err
	}
	return &termState{termios: saved}, nil
}

func (s *termState) restore(inFd, outFd int) error {
	return setTermios(inFd, &s.termios)
}
