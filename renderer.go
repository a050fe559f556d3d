package vtscreen

import (
	"bytes"

	"github.com/finnbar/vtscreen/platform"
	"github.com/finnbar/vtscreen/rendererr"
)

// minBlankRun is the minimum length of a consecutive default-blank
// cell run that is worth collapsing into a single Erase Character
// (CSI n X) instead of writing it cell by cell.
const minBlankRun = 8

// maxEraseCount is the largest single CSI n X count emitted; longer
// runs are split into multiple erase sequences.
const maxEraseCount = 255

// Renderer owns the double-buffered grid, per-row dirty tracking and
// line hashes, and drives the minimal-diff refresh algorithm against
// an injected platform.Collaborator.
//
// Grounded on the teacher's Screen (front/back buffers, lastStyle
// cache, reusable output bytes.Buffer) and original_source/src/
// delta.rs (hash-based scroll detection feeding the diff), but
// restructured around an injected platform.Collaborator rather than
// an owned file descriptor.
type Renderer struct {
	collab platform.Collaborator

	current *grid
	pending *grid

	currentHash []uint64
	pendingHash []uint64
	dirty       []dirtyRegion

	rows, cols int

	out *bytes.Buffer

	cursorY, cursorX int
	lastStyle        Style
	haveLastStyle    bool

	// checkInterval is how many rows are emitted between InputReady
	// interrupt checks during Refresh. 0 disables interruption.
	checkInterval int
}

// NewRenderer constructs a Renderer for a rows x cols terminal backed
// by collab. rows and cols must be positive.
func NewRenderer(collab platform.Collaborator, rows, cols int) (*Renderer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &rendererr.InvalidDimensionsError{Rows: rows, Cols: cols}
	}
	r := &Renderer{
		collab:        collab,
		current:       newGrid(rows, cols),
		pending:       newGrid(rows, cols),
		currentHash:   make([]uint64, rows),
		pendingHash:   make([]uint64, rows),
		dirty:         make([]dirtyRegion, rows),
		rows:          rows,
		cols:          cols,
		out:           newOutputBuffer(rows, cols),
		checkInterval: 64,
	}
	return r, nil
}

// Resize reallocates both grids to the new dimensions and marks every
// row fully dirty. Content outside the new bounds is dropped.
func (r *Renderer) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return &rendererr.InvalidDimensionsError{Rows: rows, Cols: cols}
	}
	newCurrent := newGrid(rows, cols)
	newPending := newGrid(rows, cols)
	n := rows
	if r.rows < n {
		n = r.rows
	}
	m := cols
	if r.cols < m {
		m = r.cols
	}
	for y := 0; y < n; y++ {
		copy(newCurrent.row(y)[:m], r.current.row(y)[:m])
		copy(newPending.row(y)[:m], r.pending.row(y)[:m])
	}
	r.current = newCurrent
	r.pending = newPending
	r.rows, r.cols = rows, cols
	r.currentHash = make([]uint64, rows)
	r.pendingHash = make([]uint64, rows)
	r.dirty = make([]dirtyRegion, rows)
	r.out = newOutputBuffer(rows, cols)
	r.haveLastStyle = false
	for y := 0; y < rows; y++ {
		r.dirty[y].full(cols)
	}
	return nil
}

// Set writes a cell into the pending frame, marks its column dirty
// and invalidates the row's hash. Out-of-range coordinates are clipped
// (a no-op), matching the Surface API's clip-don't-fail semantics.
func (r *Renderer) Set(y, x int, c Cell) {
	if y < 0 || y >= r.rows || x < 0 || x >= r.cols {
		return
	}
	if r.pending.get(y, x) == c {
		return
	}
	r.pending.set(y, x, c)
	r.dirty[y].mark(x, x)
	r.pendingHash[y] = 0
}

// Get returns the pending frame's cell at (y, x), or the blank cell if
// out of range.
func (r *Renderer) Get(y, x int) Cell {
	return r.pending.get(y, x)
}

// Dimensions returns the renderer's current row and column count.
func (r *Renderer) Dimensions() (rows, cols int) { return r.rows, r.cols }

// Refresh reconciles the pending frame against the current (on-screen)
// frame and writes the minimal byte stream to the collaborator.
// Rows inside a detected scroll hunk that are also individually dirty
// go through the same per-row diff as every other dirty row after the
// scroll is emitted: only the cells that differ from the pre-scroll
// current row are rewritten; the row is not repainted in full. Rows in
// a hunk that are not dirty are skipped. If the collaborator write fails,
// every row is marked fully dirty (so the next Refresh repaints from
// scratch) and the pending/current swap is skipped.
func (r *Renderer) Refresh() error {
	r.out.Reset()

	for y := 0; y < r.rows; y++ {
		if r.dirty[y].isDirty() || r.pendingHash[y] == 0 {
			r.pendingHash[y] = lineHash(r.pending.row(y))
		}
	}

	hunks := detectScrolls(r.currentHash, r.pendingHash)
	scrolledFrom := make([]int, r.rows)
	for i := range scrolledFrom {
		scrolledFrom[i] = -1
	}
	for _, h := range hunks {
		if h.Shift == 0 {
			// Rows that did not move need no scroll sequence.
			continue
		}
		r.emitScroll(h)
		for k := 0; k < h.Size; k++ {
			scrolledFrom[h.Start+k] = h.Shift
		}
	}

	rowsSinceCheck := 0
	aborted := false
	for y := 0; y < r.rows; y++ {
		if scrolledFrom[y] != -1 && !r.dirty[y].isDirty() {
			continue
		}
		if !r.dirty[y].isDirty() && r.currentHash[y] == r.pendingHash[y] {
			continue
		}

		oldRow := r.current.row(y)
		newRow := r.pending.row(y)
		first, last, ok := lineDiff(oldRow, newRow)
		if !ok {
			continue
		}
		r.emitRow(y, first, last, oldRow, newRow)

		rowsSinceCheck++
		if r.checkInterval > 0 && rowsSinceCheck >= r.checkInterval {
			rowsSinceCheck = 0
			if r.collab.InputReady() {
				aborted = true
				break
			}
		}
	}

	if r.out.Len() > 0 {
		if err := r.collab.Write(r.out.Bytes()); err != nil {
			for y := 0; y < r.rows; y++ {
				r.dirty[y].full(r.cols)
			}
			r.haveLastStyle = false
			return err
		}
	}

	if aborted {
		return nil
	}

	r.current.copyFrom(r.pending)
	copy(r.currentHash, r.pendingHash)
	for y := 0; y < r.rows; y++ {
		r.dirty[y].clean()
	}
	return nil
}

// emitScroll writes the Insert/Delete Lines sequence for one detected
// scroll hunk: a positive shift (content moved toward lower indices)
// is a scroll-up, emitted as Delete Lines at the hunk's top; a
// negative shift is a scroll-down, emitted as Insert Lines.
func (r *Renderer) emitScroll(h ScrollOp) {
	r.moveCursor(h.Start, 0)
	r.out.WriteString("\x1b[")
	if h.Shift > 0 {
		writeDecimal(r.out, h.Shift)
		r.out.WriteByte('M')
	} else {
		writeDecimal(r.out, -h.Shift)
		r.out.WriteByte('L')
	}
}

func (r *Renderer) emitRow(y, first, last int, oldRow, newRow []Cell) {
	x := first
	for x <= last {
		c := newRow[x]
		if c.isBlank() {
			run := 1
			for x+run <= last && newRow[x+run].isBlank() {
				run++
			}
			if run >= minBlankRun {
				r.moveCursor(y, x)
				r.ensureStyle(DefaultStyle())
				remaining := run
				for remaining > 0 {
					n := remaining
					if n > maxEraseCount {
						n = maxEraseCount
					}
					r.out.WriteString("\x1b[")
					writeDecimal(r.out, n)
					r.out.WriteByte('X')
					remaining -= n
				}
				// CSI n X erases without moving the cursor, so the
				// tracked position stays at the run's start; the next
				// moveCursor call must still emit a sequence.
				x += run
				continue
			}
		}
		if oldRow[x] == c {
			x++
			continue
		}
		r.moveCursor(y, x)
		r.ensureStyle(c.Style)
		r.out.WriteRune(c.Rune)
		r.cursorX = x + 1
		x++
	}
}

func (r *Renderer) moveCursor(y, x int) {
	if r.cursorY == y && r.cursorX == x {
		return
	}
	emitCursorMove(r.out, r.cursorY, r.cursorX, y, x)
	r.cursorY, r.cursorX = y, x
}

// ensureStyle emits one SGR sequence when (attr, fg, bg) differs from
// the last one written: attrs, then foreground, then background,
// semicolon-separated, per spec 4.7. There are no selective off-codes
// — ANSI has no reliable per-attribute disable — so every emission
// carries the full reset-or-attrs prefix from WriteSGRAttrs.
func (r *Renderer) ensureStyle(s Style) {
	if r.haveLastStyle && r.lastStyle.Equal(s) {
		return
	}
	r.out.WriteString("\x1b[")
	WriteSGRAttrs(s.Attr, r.out)
	r.out.WriteByte(';')
	WriteSGRForeground(s.FG, r.out)
	r.out.WriteByte(';')
	WriteSGRBackground(s.BG, r.out)
	r.out.WriteByte('m')
	r.lastStyle = s
	r.haveLastStyle = true
}
