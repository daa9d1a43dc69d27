package editline

import "testing"

func TestLineBuffer_InsertChar_ASCII(t *testing.T) {
	b := NewLineBuffer(16)
	for _, c := range "hello" {
		b.InsertChar(c)
	}

	text, err := b.Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if got, want := text, "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestLineBuffer_InsertChar_Multibyte(t *testing.T) {
	b := NewLineBuffer(0)
	input := "héllo wörld ☃"
	total := 0
	for _, c := range input {
		b.InsertChar(c)
		total += len(string(c))
	}

	text, err := b.Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if text != input {
		t.Fatalf("text=%q, want %q", text, input)
	}
	if got := b.Cursor(); got != total {
		t.Fatalf("cursor=%d, want total UTF-8 length %d", got, total)
	}
}

func TestLineBuffer_InsertChar_InMiddle(t *testing.T) {
	b := NewLineBuffer(8)
	b.Load("ac")
	b.MoveCursorLeft()
	b.InsertChar('b')

	text, _ := b.Text()
	if got, want := text, "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestLineBuffer_DeleteBeforeCursor(t *testing.T) {
	b := NewLineBuffer(8)
	if b.DeleteBeforeCursor() {
		t.Fatalf("delete on empty buffer reported true")
	}

	b.Load("ab")
	if !b.DeleteBeforeCursor() {
		t.Fatalf("delete reported false with cursor at end")
	}
	text, _ := b.Text()
	if got, want := text, "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.MoveCursorToStart()
	if b.DeleteBeforeCursor() {
		t.Fatalf("delete at offset 0 reported true")
	}
}

func TestLineBuffer_DeleteAtCursor(t *testing.T) {
	b := NewLineBuffer(8)
	b.Load("ab")
	if b.DeleteAtCursor() {
		t.Fatalf("delete at end reported true")
	}

	b.MoveCursorToStart()
	if !b.DeleteAtCursor() {
		t.Fatalf("delete at start reported false")
	}
	text, _ := b.Text()
	if got, want := text, "b"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

// Byte-wise backspace over a multi-byte character leaves the tail invalid
// until every byte is gone; Text reports that instead of panicking.
func TestLineBuffer_Text_InvalidAfterPartialDelete(t *testing.T) {
	b := NewLineBuffer(8)
	b.InsertChar('é') // two bytes
	b.DeleteBeforeCursor()

	if _, err := b.Text(); err != ErrInvalidUTF8 {
		t.Fatalf("err=%v, want ErrInvalidUTF8", err)
	}

	b.DeleteBeforeCursor()
	text, err := b.Text()
	if err != nil || text != "" {
		t.Fatalf("text=%q err=%v after removing both bytes", text, err)
	}
}

func TestLineBuffer_MoveCursor_Edges(t *testing.T) {
	b := NewLineBuffer(8)
	if b.MoveCursorLeft() || b.MoveCursorRight() {
		t.Fatalf("cursor moved in empty buffer")
	}

	b.Load("ab")
	if b.MoveCursorRight() {
		t.Fatalf("cursor moved right past end")
	}
	if !b.MoveCursorLeft() || !b.MoveCursorLeft() {
		t.Fatalf("cursor failed to move left inside buffer")
	}
	if b.MoveCursorLeft() {
		t.Fatalf("cursor moved left past start")
	}
}

func TestLineBuffer_MoveCursorToStartEnd(t *testing.T) {
	b := NewLineBuffer(16)
	b.Load("hello")

	if got, want := b.MoveCursorToStart(), 5; got != want {
		t.Fatalf("MoveCursorToStart=%d, want %d", got, want)
	}
	if got, want := b.MoveCursorToEnd(), 5; got != want {
		t.Fatalf("MoveCursorToEnd=%d, want %d", got, want)
	}
	if got, want := b.MoveCursorToEnd(), 0; got != want {
		t.Fatalf("MoveCursorToEnd at end=%d, want %d", got, want)
	}
}

func TestLineBuffer_WordLeftRight(t *testing.T) {
	b := NewLineBuffer(32)
	b.Load("hello world test")

	b.MoveCursorWordLeft()
	if got, want := b.Cursor(), 12; got != want {
		t.Fatalf("after 1 word-left cursor=%d, want %d", got, want)
	}
	b.MoveCursorWordLeft()
	if got, want := b.Cursor(), 6; got != want {
		t.Fatalf("after 2 word-left cursor=%d, want %d", got, want)
	}
	b.MoveCursorWordRight()
	if got, want := b.Cursor(), 12; got != want {
		t.Fatalf("after word-right cursor=%d, want %d", got, want)
	}
}

func TestLineBuffer_SymbolRunsAreWords(t *testing.T) {
	b := NewLineBuffer(16)
	b.Load("3 + 5")

	want := []int{4, 2, 0}
	for i, w := range want {
		b.MoveCursorWordLeft()
		if got := b.Cursor(); got != w {
			t.Fatalf("word-left #%d cursor=%d, want %d", i+1, got, w)
		}
	}
}

func TestLineBuffer_DeleteWordLeft_SymbolRuns(t *testing.T) {
	b := NewLineBuffer(16)
	b.Load("3 + 5")

	b.DeleteWordLeft()
	b.DeleteWordLeft()
	text, _ := b.Text()
	if got, want := text, "3 "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestLineBuffer_DeleteWordRight(t *testing.T) {
	b := NewLineBuffer(32)
	b.Load("hello world")
	b.MoveCursorToStart()

	if got, want := b.DeleteWordRight(), 6; got != want {
		t.Fatalf("DeleteWordRight=%d, want %d", got, want)
	}
	text, _ := b.Text()
	if got, want := text, "world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestLineBuffer_Load(t *testing.T) {
	b := NewLineBuffer(4)
	b.Load("hello there")

	text, _ := b.Text()
	if got, want := text, "hello there"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), len("hello there"); got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	b.Load("x")
	text, _ = b.Text()
	if got, want := text, "x"; got != want {
		t.Fatalf("text after reload=%q, want %q", got, want)
	}
}

func TestLineBuffer_Clear(t *testing.T) {
	b := NewLineBuffer(8)
	b.Load("abc")
	b.Clear()

	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Fatalf("len=%d cursor=%d after Clear, want 0 0", b.Len(), b.Cursor())
	}
}
