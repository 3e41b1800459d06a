package session

import "unicode"

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether all of m2 are held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Key is a logical key after terminal decoding.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyEvent is one normalized key press. Rune is set only for KeyRune.
type KeyEvent struct {
	Mods Modifiers
	Key  Key
	Rune rune
}

// Rune builds a plain character press.
func Rune(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }

// Ctrl builds Ctrl+r.
func Ctrl(r rune) KeyEvent { return KeyEvent{Mods: ModCtrl, Key: KeyRune, Rune: r} }

// Press builds a non-character key press.
func Press(k Key) KeyEvent { return KeyEvent{Key: k} }

// isCtrl matches Ctrl+r in either case.
func (e KeyEvent) isCtrl(r rune) bool {
	return e.Key == KeyRune && e.Mods.Has(ModCtrl) && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// isChar matches an unmodified character (Shift allowed) from set.
func (e KeyEvent) isChar(set ...rune) bool {
	if e.Key != KeyRune || e.Mods.Has(ModCtrl) || e.Mods.Has(ModAlt) {
		return false
	}
	for _, r := range set {
		if e.Rune == r {
			return true
		}
	}
	return false
}

func (e KeyEvent) isUp() bool    { return e.Key == KeyUp || e.isChar('k') }
func (e KeyEvent) isDown() bool  { return e.Key == KeyDown || e.isChar('j') }
func (e KeyEvent) isLeft() bool  { return e.Key == KeyLeft || e.isChar('h') }
func (e KeyEvent) isRight() bool { return e.Key == KeyRight || e.isChar('l') }

// printable reports whether the event types a character into the buffer.
func (e KeyEvent) printable() bool {
	return e.Key == KeyRune && !e.Mods.Has(ModCtrl) && !e.Mods.Has(ModAlt) && unicode.IsPrint(e.Rune)
}
