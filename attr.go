package vtscreen

import "bytes"

// Attribute is a bitflag set over the text attributes the core
// understands. The zero value is "normal" (no attributes set).
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// Has reports whether a contains attr.
func (a Attribute) Has(attr Attribute) bool { return a&attr != 0 }

// With returns a new set with attr added (union).
func (a Attribute) With(attr Attribute) Attribute { return a | attr }

// Without returns a new set with attr removed.
func (a Attribute) Without(attr Attribute) Attribute { return a &^ attr }

// Intersect returns the attributes common to both sets.
func (a Attribute) Intersect(other Attribute) Attribute { return a & other }

// Complement returns the attributes not present in a.
func (a Attribute) Complement() Attribute { return ^a }

// sgrAttrCodes lists the attribute/SGR-code pairs in ascending numeric
// order of their SGR code, matching the required emission order.
var sgrAttrCodes = [...]struct {
	attr Attribute
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
	{AttrHidden, '8'},
	{AttrStrikethrough, '9'},
}

// WriteSGRAttrs emits the numeric SGR sub-parameters for an attribute
// set: "0" for the empty set (full reset), otherwise the ascending
// subset of {1,2,3,4,5,7,8,9}, semicolon-separated. No off-codes are
// ever emitted — ANSI has no reliable per-attribute disable, so a
// transition always resets first.
func WriteSGRAttrs(a Attribute, sink *bytes.Buffer) {
	if a == 0 {
		sink.WriteByte('0')
		return
	}
	first := true
	for _, pair := range sgrAttrCodes {
		if !a.Has(pair.attr) {
			continue
		}
		if !first {
			sink.WriteByte(';')
		}
		sink.WriteByte(pair.code)
		first = false
	}
}
