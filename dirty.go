package vtscreen

// dirtyRegion tracks a per-row [first, last] inclusive interval of
// changed columns. A region with ok == false is clean.
//
// Grounded on the teacher's buffer.go row-level dirty-bool tracking
// (dirtyRows []bool), generalized to the column interval this spec's
// diff pass needs instead of a whole-row flag.
type dirtyRegion struct {
	first, last int
	ok          bool
}

// clean marks the region as having no dirty columns.
func (d *dirtyRegion) clean() {
	d.ok = false
	d.first, d.last = 0, 0
}

// full marks the entire row [0, width-1] dirty.
func (d *dirtyRegion) full(width int) {
	d.first, d.last, d.ok = 0, width-1, true
	if width <= 0 {
		d.ok = false
	}
}

// mark unions [a, b] into the existing dirty interval.
func (d *dirtyRegion) mark(a, b int) {
	if a > b {
		a, b = b, a
	}
	if !d.ok {
		d.first, d.last, d.ok = a, b, true
		return
	}
	if a < d.first {
		d.first = a
	}
	if b > d.last {
		d.last = b
	}
}

// isDirty reports whether the row has any marked columns.
func (d *dirtyRegion) isDirty() bool { return d.ok }

// rangeOf returns the current dirty interval and whether it is set.
func (d *dirtyRegion) rangeOf() (first, last int, ok bool) {
	return d.first, d.last, d.ok
}
