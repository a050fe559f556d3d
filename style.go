package vtscreen

// Style combines foreground, background color and attributes — the
// subset of the teacher's wider Style type this core actually needs
// (no fill color, text transform, alignment or margins: those are
// layout/widget concerns, out of scope for the rendering core).
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{FG: DefaultColor(), BG: DefaultColor()}
}

// Equal reports whether two styles are identical.
func (s Style) Equal(other Style) bool { return s == other }

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c Color) Style { s.FG = c; return s }

// Background returns a copy of s with the background color set.
func (s Style) Background(c Color) Style { s.BG = c; return s }

// Bold returns a copy of s with bold enabled.
func (s Style) Bold() Style { s.Attr = s.Attr.With(AttrBold); return s }

// Dim returns a copy of s with dim enabled.
func (s Style) Dim() Style { s.Attr = s.Attr.With(AttrDim); return s }

// Italic returns a copy of s with italic enabled.
func (s Style) Italic() Style { s.Attr = s.Attr.With(AttrItalic); return s }

// Underline returns a copy of s with underline enabled.
func (s Style) Underline() Style { s.Attr = s.Attr.With(AttrUnderline); return s }

// Reverse returns a copy of s with reverse video enabled.
func (s Style) Reverse() Style { s.Attr = s.Attr.With(AttrReverse); return s }

// Strikethrough returns a copy of s with strikethrough enabled.
func (s Style) Strikethrough() Style { s.Attr = s.Attr.With(AttrStrikethrough); return s }

// Pair is a registered (foreground, background) combination, set and
// applied together — grounded on the original implementation's
// ColorPair / init_pair / color_pair trio.
type Pair struct {
	FG, BG Color
}
