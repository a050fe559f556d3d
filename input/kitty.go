package input

import "strconv"

// KeyEventType distinguishes a key press from a repeat or release
// event, as reported by the Kitty keyboard protocol's enhanced
// sequences.
type KeyEventType int

const (
	Press   KeyEventType = 1
	Repeat  KeyEventType = 2
	Release KeyEventType = 3
)

// Modifiers is a bitflag set of the modifier keys held during a Kitty
// enhanced key event.
//
// Grounded on original_source/src/kitty.rs's Modifiers — note this
// mirrors the original's raw (non-offset) encoding: the wire value is
// the modifier bit sum directly, not "1 + sum" as some xterm dialects
// use, because that is what original_source's parser and its literal
// test oracles (e.g. Ctrl+Shift -> "5") expect.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
	ModHyper
	ModMeta
	ModCapsLock
	ModNumLock
)

// KeyEvent is a decoded Kitty-keyboard-protocol enhanced key event.
type KeyEvent struct {
	Code       int
	Modifiers  Modifiers
	EventType  KeyEventType
	ShiftedKey *int
}

func (e KeyEvent) IsShift() bool { return e.Modifiers&ModShift != 0 }
func (e KeyEvent) IsAlt() bool   { return e.Modifiers&ModAlt != 0 }
func (e KeyEvent) IsCtrl() bool  { return e.Modifiers&ModCtrl != 0 }

// DecodeKittySequence parses a Kitty keyboard protocol "CSI ... u"
// sequence of the form code[;modifiers[;event_type[;shifted_key]]]u.
//
// Grounded on original_source/src/kitty.rs's KeyEvent::from_sequence.
func DecodeKittySequence(seq []byte) (KeyEvent, bool) {
	if len(seq) < 4 || seq[0] != 0x1B || seq[1] != '[' || seq[len(seq)-1] != 'u' {
		return KeyEvent{}, false
	}
	body := string(seq[2 : len(seq)-1])
	if body == "" {
		return KeyEvent{}, false
	}

	fields := splitFields(body)
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return KeyEvent{}, false
	}

	ev := KeyEvent{Code: code, EventType: Press}

	if len(fields) >= 2 && fields[1] != "" {
		m, err := strconv.Atoi(fields[1])
		if err != nil {
			return KeyEvent{}, false
		}
		ev.Modifiers = Modifiers(m)
	}
	if len(fields) >= 3 && fields[2] != "" {
		t, err := strconv.Atoi(fields[2])
		if err != nil {
			return KeyEvent{}, false
		}
		ev.EventType = KeyEventType(t)
	}
	if len(fields) >= 4 && fields[3] != "" {
		s, err := strconv.Atoi(fields[3])
		if err != nil {
			return KeyEvent{}, false
		}
		ev.ShiftedKey = &s
	}

	return ev, true
}

func splitFields(s string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	fields = append(fields, s[start:])
	return fields
}
