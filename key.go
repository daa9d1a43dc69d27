package editline

// Key identifies a logical keypress delivered by a terminal backend.
type Key int

const (
	KeyNormal Key = iota // printable character, rune carried in KeyEvent.Rune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyCtrlLeft
	KeyCtrlRight
	KeyCtrlDelete
	KeyAltBackspace
)

// KeyEvent is one parsed keypress. Rune is meaningful only for KeyNormal;
// a KeyNormal event with Rune 0 is the no-op sentinel emitted for input
// the decoder does not recognize.
type KeyEvent struct {
	Key  Key
	Rune rune
}
