package vtscreen

import (
	"bytes"
	"testing"
	"time"

	"github.com/finnbar/vtscreen/input"
)

// fakeCollaborator is an in-memory platform.Collaborator used only to
// exercise Renderer.Refresh without a real terminal, mirroring how
// original_source's test suite faked Backend for delta.rs's tests.
type fakeCollaborator struct {
	written    bytes.Buffer
	writeErr   error
	rows, cols int
	ready      bool
}

func (f *fakeCollaborator) Init() error    { return nil }
func (f *fakeCollaborator) Cleanup() error { return nil }
func (f *fakeCollaborator) Size() (int, int, error) {
	return f.rows, f.cols, nil
}
func (f *fakeCollaborator) Write(p []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written.Write(p)
	return nil
}
func (f *fakeCollaborator) InputReady() bool { return f.ready }
func (f *fakeCollaborator) ReadKey(timeout time.Duration) (input.Key, bool, error) {
	return input.Key{}, false, nil
}

func newTestRenderer(t *testing.T, rows, cols int) (*Renderer, *fakeCollaborator) {
	t.Helper()
	fc := &fakeCollaborator{rows: rows, cols: cols}
	r, err := NewRenderer(fc, rows, cols)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, fc
}

func TestRefreshNoMutationEmitsNothing(t *testing.T) {
	r, fc := newTestRenderer(t, 4, 80)
	if err := r.Refresh(); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	fc.written.Reset()
	if err := r.Refresh(); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if fc.written.Len() != 0 {
		t.Fatalf("expected zero bytes on unchanged refresh, got %q", fc.written.String())
	}
}

func TestRefreshMinimalDiffEmission(t *testing.T) {
	// Scenario 4 from the testable-properties list: an 80-cell row,
	// unchanged except column 40 flips 'A' -> 'X' with no style
	// change, emits exactly "ESC[1;41HX".
	r, fc := newTestRenderer(t, 1, 80)
	for x := 0; x < 80; x++ {
		r.Set(0, x, NewCell('A', DefaultStyle()))
	}
	if err := r.Refresh(); err != nil {
		t.Fatalf("priming refresh: %v", err)
	}
	fc.written.Reset()

	r.Set(0, 40, NewCell('X', DefaultStyle()))
	if err := r.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	want := "\x1b[1;41HX"
	if got := fc.written.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRefreshStyleCacheElidesDuplicateSGR(t *testing.T) {
	// Scenario 5: two adjacent bold-red-on-default cells produce one
	// SGR sequence, not two.
	r, fc := newTestRenderer(t, 1, 10)
	if err := r.Refresh(); err != nil {
		t.Fatalf("priming refresh: %v", err)
	}
	fc.written.Reset()

	style := DefaultStyle().Bold().Foreground(Red)
	r.Set(0, 0, NewCell('A', style))
	r.Set(0, 1, NewCell('B', style))
	if err := r.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	want := "\x1b[1;31;49mAB"
	if got := fc.written.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRefreshRLEForBlankRuns(t *testing.T) {
	// Scenario 6: clearing 20 consecutive cells in an otherwise dirty
	// row emits one CSI n X instead of 20 space writes.
	r, fc := newTestRenderer(t, 1, 40)
	for x := 0; x < 40; x++ {
		r.Set(0, x, NewCell('A', DefaultStyle()))
	}
	if err := r.Refresh(); err != nil {
		t.Fatalf("priming refresh: %v", err)
	}
	fc.written.Reset()

	for x := 0; x < 20; x++ {
		r.Set(0, x, EmptyCell())
	}
	if err := r.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	want := "\x1b[1;1H\x1b[20X"
	if got := fc.written.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRefreshRLEBlankRunFollowedByNonBlankCellMovesCursor(t *testing.T) {
	// A CSI n X erase never moves the real cursor, so a changed
	// non-blank cell immediately following the erased run within the
	// same dirty window must still get an explicit position sequence
	// rather than being written at the erase run's start column.
	r, fc := newTestRenderer(t, 1, 40)
	for x := 0; x < 40; x++ {
		r.Set(0, x, NewCell('A', DefaultStyle()))
	}
	if err := r.Refresh(); err != nil {
		t.Fatalf("priming refresh: %v", err)
	}
	fc.written.Reset()

	for x := 0; x < 20; x++ {
		r.Set(0, x, EmptyCell())
	}
	r.Set(0, 20, NewCell('Z', DefaultStyle()))
	if err := r.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	want := "\x1b[1;1H\x1b[20X\x1b[1;21HZ"
	if got := fc.written.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := r.current.get(0, 20).Rune; got != 'Z' {
		t.Fatalf("current[0][20] = %q, want %q", got, 'Z')
	}
}

func TestRefreshCommitsCurrentEqualsPending(t *testing.T) {
	r, _ := newTestRenderer(t, 2, 5)
	r.Set(0, 0, NewCell('Z', DefaultStyle()))
	if err := r.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if r.current.get(0, 0).Rune != 'Z' {
		t.Fatal("current grid must equal pending after a completed refresh")
	}
	for y := 0; y < r.rows; y++ {
		if r.dirty[y].isDirty() {
			t.Fatalf("row %d still dirty after refresh", y)
		}
	}
}

func TestRefreshWriteErrorMarksAllRowsDirty(t *testing.T) {
	r, fc := newTestRenderer(t, 3, 5)
	if err := r.Refresh(); err != nil {
		t.Fatalf("priming refresh: %v", err)
	}
	r.Set(1, 0, NewCell('E', DefaultStyle()))
	fc.writeErr = errWriteFailed
	if err := r.Refresh(); err == nil {
		t.Fatal("expected Refresh to propagate the write error")
	}
	for y := 0; y < r.rows; y++ {
		if !r.dirty[y].isDirty() {
			t.Fatalf("row %d must be marked dirty after a write failure", y)
		}
	}
}

func TestResizeMarksEverythingDirty(t *testing.T) {
	r, _ := newTestRenderer(t, 3, 5)
	if err := r.Refresh(); err != nil {
		t.Fatalf("priming refresh: %v", err)
	}
	if err := r.Resize(4, 6); err != nil {
		t.Fatalf("resize: %v", err)
	}
	for y := 0; y < 4; y++ {
		if !r.dirty[y].isDirty() {
			t.Fatalf("row %d must be dirty after resize", y)
		}
	}
}

func TestResizeRejectsInvalidDimensions(t *testing.T) {
	r, _ := newTestRenderer(t, 3, 5)
	if err := r.Resize(0, 5); err == nil {
		t.Fatal("expected error for zero rows")
	}
}

func TestSetClipsOutOfRange(t *testing.T) {
	r, _ := newTestRenderer(t, 2, 2)
	r.Set(-1, 0, NewCell('X', DefaultStyle()))
	r.Set(0, 99, NewCell('X', DefaultStyle()))
	// Neither call should panic; nothing inside bounds should change.
	if r.Get(0, 0).Rune != ' ' {
		t.Fatal("out-of-range Set must not mutate in-bounds cells")
	}
}

type sentinelErr string

func (e sentinelErr) Error() string { return string(e) }

const errWriteFailed sentinelErr = "write failed"
