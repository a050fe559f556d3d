package vtscreen

import (
	"bytes"
	"testing"
)

func TestWriteKittyEnable(t *testing.T) {
	var buf bytes.Buffer
	writeKittyEnable(&buf, KittyDisambiguateEscapeCodes|KittyReportEventTypes)
	if got := buf.String(); got != "\x1b[>3u" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteKittyDisable(t *testing.T) {
	var buf bytes.Buffer
	writeKittyDisable(&buf)
	if got := buf.String(); got != "\x1b[<u" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteKittyPush(t *testing.T) {
	var buf bytes.Buffer
	writeKittyPush(&buf, KittyReportAllKeysAsEscapeCodes)
	if got := buf.String(); got != "\x1b[>8;1u" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteKittyPop(t *testing.T) {
	var buf bytes.Buffer
	writeKittyPop(&buf)
	if got := buf.String(); got != "\x1b[<1u" {
		t.Fatalf("got %q", got)
	}
}

func TestKittyFlagsAllBitsSum(t *testing.T) {
	all := KittyDisambiguateEscapeCodes | KittyReportEventTypes | KittyReportAlternateKeys |
		KittyReportAllKeysAsEscapeCodes | KittyReportAssociatedText
	if all != 31 {
		t.Fatalf("got %d, want 31", all)
	}
}
