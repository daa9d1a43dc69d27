package editline

import "unicode/utf8"

// LineBuffer holds the bytes of the line being edited and a cursor
// expressed as a byte offset into those bytes. Contents are UTF-8;
// insertion never splits a code point, and the cursor always satisfies
// 0 <= cursor <= len.
type LineBuffer struct {
	buf    []byte
	cursor int
}

// NewLineBuffer returns an empty buffer. capacity is an allocation hint,
// not a limit; the buffer grows as needed.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &LineBuffer{buf: make([]byte, 0, capacity)}
}

// Clear truncates the buffer and moves the cursor to the start.
func (b *LineBuffer) Clear() {
	b.buf = b.buf[:0]
	b.cursor = 0
}

func (b *LineBuffer) Len() int { return len(b.buf) }

func (b *LineBuffer) IsEmpty() bool { return len(b.buf) == 0 }

// Cursor returns the cursor position as a byte offset.
func (b *LineBuffer) Cursor() int { return b.cursor }

// Bytes returns the raw buffer contents. The slice is only valid until
// the next mutation.
func (b *LineBuffer) Bytes() []byte { return b.buf }

// Text returns the buffer contents, verifying that they form valid
// UTF-8. The check is defensive; the insert contract keeps the buffer
// valid unless byte-wise deletes have split a code point.
func (b *LineBuffer) Text() (string, error) {
	if !utf8.Valid(b.buf) {
		return "", ErrInvalidUTF8
	}
	return string(b.buf), nil
}

// InsertChar encodes c as UTF-8, inserts its bytes at the cursor and
// advances the cursor past them.
func (b *LineBuffer) InsertChar(c rune) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], c)

	b.buf = append(b.buf, enc[:n]...)
	copy(b.buf[b.cursor+n:], b.buf[b.cursor:len(b.buf)-n])
	copy(b.buf[b.cursor:], enc[:n])
	b.cursor += n
}

// DeleteBeforeCursor removes the single byte before the cursor. Removing
// a multi-byte character therefore takes one call per byte.
func (b *LineBuffer) DeleteBeforeCursor() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	b.buf = append(b.buf[:b.cursor], b.buf[b.cursor+1:]...)
	return true
}

// DeleteAtCursor removes the single byte at the cursor.
func (b *LineBuffer) DeleteAtCursor() bool {
	if b.cursor >= len(b.buf) {
		return false
	}
	b.buf = append(b.buf[:b.cursor], b.buf[b.cursor+1:]...)
	return true
}

func (b *LineBuffer) MoveCursorLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

func (b *LineBuffer) MoveCursorRight() bool {
	if b.cursor >= len(b.buf) {
		return false
	}
	b.cursor++
	return true
}

// MoveCursorToStart jumps the cursor to offset 0 and reports how many
// byte positions it traversed.
func (b *LineBuffer) MoveCursorToStart() int {
	moved := b.cursor
	b.cursor = 0
	return moved
}

// MoveCursorToEnd jumps the cursor to the end of the buffer and reports
// how many byte positions it traversed.
func (b *LineBuffer) MoveCursorToEnd() int {
	moved := len(b.buf) - b.cursor
	b.cursor = len(b.buf)
	return moved
}

type charClass int

const (
	classSpace charClass = iota
	classWord
	classSymbol
)

func classify(c byte) charClass {
	switch {
	case c == ' ' || c == '\t':
		return classSpace
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return classWord
	default:
		return classSymbol
	}
}

// findWordLeft skips whitespace to the left of the cursor, then a maximal
// run of same-class bytes. A run of symbols is a word unit of its own, so
// in "3 + 5" the "+" is a separate stop.
func (b *LineBuffer) findWordLeft() int {
	pos := b.cursor
	for pos > 0 && classify(b.buf[pos-1]) == classSpace {
		pos--
	}
	if pos > 0 {
		cls := classify(b.buf[pos-1])
		for pos > 0 && classify(b.buf[pos-1]) == cls {
			pos--
		}
	}
	return pos
}

// findWordRight consumes the run of the class under the cursor, then any
// whitespace after it.
func (b *LineBuffer) findWordRight() int {
	pos := b.cursor
	if pos < len(b.buf) {
		cls := classify(b.buf[pos])
		if cls != classSpace {
			for pos < len(b.buf) && classify(b.buf[pos]) == cls {
				pos++
			}
		}
	}
	for pos < len(b.buf) && classify(b.buf[pos]) == classSpace {
		pos++
	}
	return pos
}

// MoveCursorWordLeft moves the cursor to the previous word boundary and
// reports the number of byte positions moved.
func (b *LineBuffer) MoveCursorWordLeft() int {
	target := b.findWordLeft()
	moved := b.cursor - target
	b.cursor = target
	return moved
}

// MoveCursorWordRight moves the cursor to the next word boundary and
// reports the number of byte positions moved.
func (b *LineBuffer) MoveCursorWordRight() int {
	target := b.findWordRight()
	moved := target - b.cursor
	b.cursor = target
	return moved
}

// DeleteWordLeft removes the bytes between the previous word boundary and
// the cursor, and reports how many were removed.
func (b *LineBuffer) DeleteWordLeft() int {
	target := b.findWordLeft()
	n := b.cursor - target
	b.buf = append(b.buf[:target], b.buf[b.cursor:]...)
	b.cursor = target
	return n
}

// DeleteWordRight removes the bytes between the cursor and the next word
// boundary, and reports how many were removed.
func (b *LineBuffer) DeleteWordRight() int {
	target := b.findWordRight()
	n := target - b.cursor
	b.buf = append(b.buf[:b.cursor], b.buf[target:]...)
	return n
}

// Load replaces the buffer contents with text and puts the cursor at the
// end. Used to splice in a history entry.
func (b *LineBuffer) Load(text string) {
	b.buf = append(b.buf[:0], text...)
	b.cursor = len(b.buf)
}
