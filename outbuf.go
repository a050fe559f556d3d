package vtscreen

import "bytes"

const maxOutputBufferReserve = 65536

// newOutputBuffer returns a growable byte sink pre-reserved to
// min(rows*cols*10, 65536) bytes, per the spec's output-buffer sizing
// rule. bytes.Buffer never shrinks its backing array on Reset, so one
// allocation here amortizes across the renderer's lifetime — mirrors
// the teacher's reusable bytes.Buffer field on Screen.
func newOutputBuffer(rows, cols int) *bytes.Buffer {
	want := rows * cols * 10
	if want > maxOutputBufferReserve {
		want = maxOutputBufferReserve
	}
	buf := new(bytes.Buffer)
	buf.Grow(want)
	return buf
}
