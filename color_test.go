package vtscreen

import (
	"bytes"
	"testing"
)

func TestWriteSGRForegroundDefault(t *testing.T) {
	var buf bytes.Buffer
	WriteSGRForeground(DefaultColor(), &buf)
	if got := buf.String(); got != "39" {
		t.Fatalf("got %q, want %q", got, "39")
	}
}

func TestWriteSGRBackgroundDefault(t *testing.T) {
	var buf bytes.Buffer
	WriteSGRBackground(DefaultColor(), &buf)
	if got := buf.String(); got != "49" {
		t.Fatalf("got %q, want %q", got, "49")
	}
}

func TestWriteSGRForegroundBasic(t *testing.T) {
	cases := []struct {
		c    Color
		want string
	}{
		{Red, "31"},
		{White, "37"},
		{BrightBlack, "90"},
		{BrightWhite, "97"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		WriteSGRForeground(tc.c, &buf)
		if got := buf.String(); got != tc.want {
			t.Errorf("fg %+v: got %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestWriteSGRBackgroundBasic(t *testing.T) {
	var buf bytes.Buffer
	WriteSGRBackground(BrightRed, &buf)
	if got := buf.String(); got != "101" {
		t.Fatalf("got %q, want %q", got, "101")
	}
}

func TestWriteSGRForeground256(t *testing.T) {
	var buf bytes.Buffer
	WriteSGRForeground(PaletteColor(200), &buf)
	if got := buf.String(); got != "38;5;200" {
		t.Fatalf("got %q, want %q", got, "38;5;200")
	}
}

func TestWriteSGRBackgroundRGB(t *testing.T) {
	var buf bytes.Buffer
	WriteSGRBackground(RGB(255, 16, 0), &buf)
	if got := buf.String(); got != "48;2;255;16;0" {
		t.Fatalf("got %q, want %q", got, "48;2;255;16;0")
	}
}

func TestColorEqual(t *testing.T) {
	if !RGB(1, 2, 3).Equal(RGB(1, 2, 3)) {
		t.Fatal("expected equal RGB colors to compare equal")
	}
	if RGB(1, 2, 3).Equal(RGB(1, 2, 4)) {
		t.Fatal("expected differing RGB colors to compare unequal")
	}
	if DefaultColor().Equal(BasicColor(0)) {
		t.Fatal("Default must not equal Black")
	}
}

func TestHexColor(t *testing.T) {
	c := Hex(0xFF5500)
	if c != (Color{Mode: ColorRGB, R: 0xFF, G: 0x55, B: 0x00}) {
		t.Fatalf("got %+v", c)
	}
}

func TestColorEncodeDistinctTags(t *testing.T) {
	// A default color and a palette color with index 0 must encode
	// differently: the mode tag occupies the high byte.
	if DefaultColor().encode() == PaletteColor(0).encode() {
		t.Fatal("Default and Ansi256(0) must encode differently")
	}
}
