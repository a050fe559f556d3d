package vtscreen

import "bytes"

// emitCursorMove writes the shortest cursor-movement sequence from
// (cy,cx) to (y,x): relative CUU/CUD/CUF/CUB for small axis-aligned
// moves (strictly shorter than the absolute form below the 4-cell
// threshold), CUP otherwise. Grounded on spec 4.8 / the teacher's
// MoveCursor + BufferCursor (teacher always emits absolute; this
// generalizes to the spec's relative-vs-absolute selection).
func emitCursorMove(sink *bytes.Buffer, cy, cx, y, x int) {
	dy := y - cy
	dx := x - cx

	switch {
	case dy == 0 && dx != 0 && abs(dx) < 4:
		sink.WriteString("\x1b[")
		writeDecimal(sink, abs(dx))
		if dx > 0 {
			sink.WriteByte('C')
		} else {
			sink.WriteByte('D')
		}
	case dx == 0 && dy != 0 && abs(dy) < 4:
		sink.WriteString("\x1b[")
		writeDecimal(sink, abs(dy))
		if dy > 0 {
			sink.WriteByte('B')
		} else {
			sink.WriteByte('A')
		}
	default:
		sink.WriteString("\x1b[")
		writeDecimal(sink, y+1)
		sink.WriteByte(';')
		writeDecimal(sink, x+1)
		sink.WriteByte('H')
	}
}

func writeDecimal(sink *bytes.Buffer, n int) {
	var scratch [10]byte
	sink.Write(appendInt(scratch[:0], n))
}
