// Package input decodes ANSI CSI and Kitty-keyboard-protocol escape
// sequences into typed key events. It is not part of the rendering
// core (the core never parses keys, per the library's scope) — it
// exists as a sibling package a platform.Collaborator implementation
// may use to turn raw bytes from a key read into a Key, the way
// original_source/src/backend.rs's parse_key_from_byte does for the
// project this library was distilled from.
package input

// Type identifies the kind of key represented by a Key value.
type Type int

const (
	TypeChar Type = iota
	TypeFunction
	TypeUp
	TypeDown
	TypeLeft
	TypeRight
	TypeEnter
	TypeBackspace
	TypeDelete
	TypeInsert
	TypeHome
	TypeEnd
	TypePageUp
	TypePageDown
	TypeTab
	TypeEscape
	TypeCtrl
	TypeAlt
	TypeEnhanced
	TypeUnknown
)

// Key is a decoded keyboard input event.
type Key struct {
	Type    Type
	Rune    rune      // for TypeChar / TypeCtrl / TypeAlt
	Func    int       // for TypeFunction (1-based: F1 = 1)
	Event   *KeyEvent // for TypeEnhanced (Kitty protocol)
}

// DecodeEscapeSequence parses a raw escape sequence (starting with
// ESC, 0x1B) into a Key. It returns ok=false if seq does not describe
// a recognized sequence.
//
// Grounded on original_source/src/input.rs's Key::from_escape_sequence.
func DecodeEscapeSequence(seq []byte) (Key, bool) {
	if len(seq) == 0 {
		return Key{}, false
	}

	if len(seq) == 1 && seq[0] == 0x1B {
		return Key{Type: TypeEscape}, true
	}

	// Kitty keyboard protocol: CSI ... u
	if len(seq) >= 4 && seq[0] == 0x1B && seq[1] == '[' && seq[len(seq)-1] == 'u' {
		if ev, ok := DecodeKittySequence(seq); ok {
			return Key{Type: TypeEnhanced, Event: &ev}, true
		}
	}

	// ESC [ sequences
	if len(seq) >= 3 && seq[0] == 0x1B && seq[1] == '[' {
		switch seq[2] {
		case 'A':
			return Key{Type: TypeUp}, true
		case 'B':
			return Key{Type: TypeDown}, true
		case 'C':
			return Key{Type: TypeRight}, true
		case 'D':
			return Key{Type: TypeLeft}, true
		case 'H':
			return Key{Type: TypeHome}, true
		case 'F':
			return Key{Type: TypeEnd}, true
		case '1':
			if len(seq) >= 4 {
				switch {
				case seq[3] == '~':
					return Key{Type: TypeHome}, true
				case seq[3] >= '1' && seq[3] <= '9' && len(seq) >= 5 && seq[4] == '~':
					return Key{Type: TypeFunction, Func: int(seq[3]-'0') + 10}, true
				}
			}
		case '2':
			if len(seq) >= 4 && seq[3] == '~' {
				return Key{Type: TypeInsert}, true
			}
		case '3':
			if len(seq) >= 4 && seq[3] == '~' {
				return Key{Type: TypeDelete}, true
			}
		case '4':
			if len(seq) >= 4 && seq[3] == '~' {
				return Key{Type: TypeEnd}, true
			}
		case '5':
			if len(seq) >= 4 && seq[3] == '~' {
				return Key{Type: TypePageUp}, true
			}
		case '6':
			if len(seq) >= 4 && seq[3] == '~' {
				return Key{Type: TypePageDown}, true
			}
		}
		return Key{}, false
	}

	// ESC O sequences (SS3, function keys F1-F4)
	if len(seq) >= 3 && seq[0] == 0x1B && seq[1] == 'O' {
		switch seq[2] {
		case 'P':
			return Key{Type: TypeFunction, Func: 1}, true
		case 'Q':
			return Key{Type: TypeFunction, Func: 2}, true
		case 'R':
			return Key{Type: TypeFunction, Func: 3}, true
		case 'S':
			return Key{Type: TypeFunction, Func: 4}, true
		}
	}

	return Key{}, false
}

// DecodeByte classifies a single raw input byte outside of an escape
// sequence (printable ASCII, control characters, and the few special
// ASCII codes a terminal sends directly).
//
// Grounded on original_source/src/backend.rs's parse_key_from_byte.
func DecodeByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return Key{Type: TypeEnter}
	case b == '\t':
		return Key{Type: TypeTab}
	case b == 127:
		return Key{Type: TypeBackspace}
	case b >= 1 && b <= 26:
		return Key{Type: TypeCtrl, Rune: rune(b - 1 + 'a')}
	case b >= 32 && b <= 126:
		return Key{Type: TypeChar, Rune: rune(b)}
	default:
		return Key{Type: TypeUnknown}
	}
}
