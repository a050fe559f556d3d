package vtscreen

import "bytes"

// KittyFlags is a bitflag set of Kitty keyboard protocol progressive
// enhancements. Grounded on original_source/src/kitty.rs's KittyFlags.
type KittyFlags uint8

const (
	KittyDisambiguateEscapeCodes KittyFlags = 1 << iota
	KittyReportEventTypes
	KittyReportAlternateKeys
	KittyReportAllKeysAsEscapeCodes
	KittyReportAssociatedText
)

// writeKittyEnable appends the enable sequence: CSI > flags u.
func writeKittyEnable(sink *bytes.Buffer, flags KittyFlags) {
	sink.WriteString("\x1b[>")
	writeDecimal(sink, int(flags))
	sink.WriteByte('u')
}

// writeKittyDisable appends the disable sequence: CSI < u.
func writeKittyDisable(sink *bytes.Buffer) {
	sink.WriteString("\x1b[<u")
}

// writeKittyPush appends the push sequence: CSI > flags ; 1 u.
func writeKittyPush(sink *bytes.Buffer, flags KittyFlags) {
	sink.WriteString("\x1b[>")
	writeDecimal(sink, int(flags))
	sink.WriteString(";1u")
}

// writeKittyPop appends the pop sequence: CSI < 1 u.
func writeKittyPop(sink *bytes.Buffer) {
	sink.WriteString("\x1b[<1u")
}
