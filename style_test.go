package vtscreen

import "testing"

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().Foreground(Red).Background(Black).Bold().Underline()
	if s.FG != Red || s.BG != Black {
		t.Fatalf("got fg=%+v bg=%+v", s.FG, s.BG)
	}
	if !s.Attr.Has(AttrBold) || !s.Attr.Has(AttrUnderline) {
		t.Fatalf("expected bold+underline, got %v", s.Attr)
	}
}

func TestStyleEqual(t *testing.T) {
	a := DefaultStyle().Bold()
	b := DefaultStyle().Bold()
	if !a.Equal(b) {
		t.Fatal("expected equal styles to compare equal")
	}
	if a.Equal(DefaultStyle()) {
		t.Fatal("expected differing styles to compare unequal")
	}
}

func TestDefaultStyleIsBlankCompatible(t *testing.T) {
	s := DefaultStyle()
	if s.FG.Mode != ColorDefault || s.BG.Mode != ColorDefault || s.Attr != 0 {
		t.Fatalf("got %+v", s)
	}
}
