package vtscreen

// lineDiff finds the minimal [first, last] inclusive range of columns
// where old and new differ. If lengths differ, the whole new row is
// reported dirty. If the rows are identical, ok is false. Otherwise a
// forward scan finds the first mismatch and a backward scan finds the
// last, each O(length).
//
// Grounded on original_source/src/delta.rs's find_line_diff.
func lineDiff(old, new []Cell) (first, last int, ok bool) {
	if len(old) != len(new) {
		return 0, len(new) - 1, true
	}
	n := len(new)
	f := 0
	for f < n && old[f] == new[f] {
		f++
	}
	if f == n {
		return 0, 0, false
	}
	l := n - 1
	for l > f && old[l] == new[l] {
		l--
	}
	return f, l, true
}
