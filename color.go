// Package vtscreen is a terminal rendering library: an immediate-mode
// API for placing characters and styles into a virtual screen grid,
// producing minimal byte streams that drive an ANSI/VT-compatible
// terminal to mirror that grid.
package vtscreen

import "bytes"

// ColorMode selects how a Color's payload is interpreted.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default ("no color")
	Color16                      // basic 16 colors (0-15)
	Color256                     // 256 color palette (0-255)
	ColorRGB                     // 24-bit true color
)

// Color is a tagged terminal color. The zero value is ColorDefault,
// meaning "terminal default" for both foreground and background — it
// replaces the Option<Color> pattern of the original implementation
// with a single variant that already carries the "unset" meaning.
type Color struct {
	Mode    ColorMode
	Index   uint8 // Color16 / Color256 payload
	R, G, B uint8 // ColorRGB payload
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color { return Color{Mode: ColorDefault} }

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color { return Color{Mode: Color16, Index: index} }

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color { return Color{Mode: Color256, Index: index} }

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorRGB, R: r, G: g, B: b} }

// Hex returns a 24-bit true color from a packed hex value (e.g. 0xFF5500).
func Hex(hex uint32) Color {
	return RGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// Named basic colors, for convenience.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Equal reports whether two colors are identical.
func (c Color) Equal(other Color) bool { return c == other }

// encode packs a Color into a 32-bit integer for line hashing: the tag
// occupies the high byte, the payload the low three.
func (c Color) encode() uint32 {
	switch c.Mode {
	case ColorRGB:
		return uint32(ColorRGB)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	case Color256, Color16:
		return uint32(c.Mode)<<24 | uint32(c.Index)
	default:
		return uint32(ColorDefault) << 24
	}
}

// appendInt appends the decimal representation of n to b without
// allocating (mirrors the teacher's scratch-buffer integer writer).
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}

// WriteSGRForeground emits the numeric SGR sub-parameters for a
// foreground color: no CSI framing, no trailing 'm'.
func WriteSGRForeground(c Color, sink *bytes.Buffer) {
	writeSGRColor(c, sink, true)
}

// WriteSGRBackground emits the numeric SGR sub-parameters for a
// background color: no CSI framing, no trailing 'm'.
func WriteSGRBackground(c Color, sink *bytes.Buffer) {
	writeSGRColor(c, sink, false)
}

func writeSGRColor(c Color, sink *bytes.Buffer, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			sink.WriteString("39")
		} else {
			sink.WriteString("49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		var scratch [8]byte
		sink.Write(appendInt(scratch[:0], base+idx))
	case Color256:
		if fg {
			sink.WriteString("38;5;")
		} else {
			sink.WriteString("48;5;")
		}
		var scratch [8]byte
		sink.Write(appendInt(scratch[:0], int(c.Index)))
	case ColorRGB:
		if fg {
			sink.WriteString("38;2;")
		} else {
			sink.WriteString("48;2;")
		}
		var scratch [16]byte
		b := scratch[:0]
		b = appendInt(b, int(c.R))
		b = append(b, ';')
		b = appendInt(b, int(c.G))
		b = append(b, ';')
		b = appendInt(b, int(c.B))
		sink.Write(b)
	}
}
