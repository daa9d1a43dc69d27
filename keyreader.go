package editline

import "unicode/utf8"

// DecodeKeyEvent parses exactly one key event from a raw byte stream.
// readByte supplies the next input byte, blocking (or suspending) until
// one is available. Every backend routes its input through this one
// decoder so escape-sequence handling cannot drift between platforms.
//
// Unrecognized or partial sequences resolve to the no-op sentinel
// KeyEvent{KeyNormal, 0} rather than blocking. Ctrl-C and Ctrl-D map to
// ErrInterrupted and ErrEndOfInput so the engine can propagate them.
func DecodeKeyEvent(readByte func() (byte, error)) (KeyEvent, error) {
	c, err := readByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch c {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, nil
	case 0x7f, 0x08:
		return KeyEvent{Key: KeyBackspace}, nil
	case 0x03:
		return KeyEvent{}, ErrInterrupted
	case 0x04:
		return KeyEvent{}, ErrEndOfInput
	case 0x1b:
		return decodeEscape(readByte)
	}

	if c >= 0x20 && c < 0x7f {
		return KeyEvent{Key: KeyNormal, Rune: rune(c)}, nil
	}
	if c >= 0x80 {
		return decodeMultibyte(c, readByte)
	}

	// Remaining control bytes are ignored.
	return KeyEvent{Key: KeyNormal, Rune: 0}, nil
}

func decodeEscape(readByte func() (byte, error)) (KeyEvent, error) {
	c2, err := readByte()
	if err != nil {
		return KeyEvent{}, err
	}

	if c2 == 0x7f || c2 == 0x08 {
		return KeyEvent{Key: KeyAltBackspace}, nil
	}
	if c2 != '[' {
		// Unknown escape: fall back to the plain character if printable.
		if c2 >= 0x20 && c2 < 0x7f {
			return KeyEvent{Key: KeyNormal, Rune: rune(c2)}, nil
		}
		return KeyEvent{Key: KeyNormal, Rune: 0}, nil
	}

	c3, err := readByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch c3 {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	case 'H':
		return KeyEvent{Key: KeyHome}, nil
	case 'F':
		return KeyEvent{Key: KeyEnd}, nil
	case '1':
		c4, err := readByte()
		if err != nil {
			return KeyEvent{}, err
		}
		if c4 == '~' {
			return KeyEvent{Key: KeyHome}, nil
		}
		if c4 == ';' {
			c5, err := readByte()
			if err != nil {
				return KeyEvent{}, err
			}
			if c5 == '5' {
				c6, err := readByte()
				if err != nil {
					return KeyEvent{}, err
				}
				switch c6 {
				case 'C':
					return KeyEvent{Key: KeyCtrlRight}, nil
				case 'D':
					return KeyEvent{Key: KeyCtrlLeft}, nil
				}
			}
		}
	case '3':
		c4, err := readByte()
		if err != nil {
			return KeyEvent{}, err
		}
		if c4 == '~' {
			return KeyEvent{Key: KeyDelete}, nil
		}
		if c4 == ';' {
			c5, err := readByte()
			if err != nil {
				return KeyEvent{}, err
			}
			if c5 == '5' {
				c6, err := readByte()
				if err != nil {
					return KeyEvent{}, err
				}
				if c6 == '~' {
					return KeyEvent{Key: KeyCtrlDelete}, nil
				}
			}
		}
	case '4':
		c4, err := readByte()
		if err != nil {
			return KeyEvent{}, err
		}
		if c4 == '~' {
			return KeyEvent{Key: KeyEnd}, nil
		}
	}

	return KeyEvent{Key: KeyNormal, Rune: 0}, nil
}

// decodeMultibyte assembles a UTF-8 encoded rune whose first byte has
// already been read.
func decodeMultibyte(first byte, readByte func() (byte, error)) (KeyEvent, error) {
	var size int
	switch {
	case first&0xe0 == 0xc0:
		size = 2
	case first&0xf0 == 0xe0:
		size = 3
	case first&0xf8 == 0xf0:
		size = 4
	default:
		return KeyEvent{}, ErrInvalidUTF8
	}

	var seq [utf8.UTFMax]byte
	seq[0] = first
	for i := 1; i < size; i++ {
		b, err := readByte()
		if err != nil {
			return KeyEvent{}, err
		}
		if b&0xc0 != 0x80 {
			return KeyEvent{}, ErrInvalidUTF8
		}
		seq[i] = b
	}

	r, n := utf8.DecodeRune(seq[:size])
	if r == utf8.RuneError && n <= 1 {
		return KeyEvent{}, ErrInvalidUTF8
	}
	return KeyEvent{Key: KeyNormal, Rune: r}, nil
}
