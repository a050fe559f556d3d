package vtscreen

// Cell is a single grid element: a codepoint plus its style. Rune is
// expected to be a single user-visible character — the core does no
// grapheme clustering or wide-character width accounting.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell: a space with the default style.
func EmptyCell() Cell { return Cell{Rune: ' ', Style: DefaultStyle()} }

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell { return Cell{Rune: r, Style: style} }

// Equal reports whether two cells are identical.
func (c Cell) Equal(other Cell) bool { return c == other }

// isBlank reports whether c is the blank cell: space, no attributes,
// default fg/bg.
func (c Cell) isBlank() bool {
	return c.Rune == ' ' && c.Style.Attr == 0 &&
		c.Style.FG.Mode == ColorDefault && c.Style.BG.Mode == ColorDefault
}
