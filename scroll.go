package vtscreen

// ScrollOp describes a contiguous run of rows that moved by a common
// shift between two frames: Size lines starting at new[Start] came
// from old[Start+Shift]. Positive Shift means scrolled up (content
// moved toward lower indices); negative means scrolled down.
type ScrollOp struct {
	Start, Size, Shift int
}

// detectScrolls runs a Heckel-style unique-match-then-extend-then-hunk
// pass over two equal-length line-hash vectors and returns the
// surviving scroll hunks in order.
//
// Grounded on original_source/src/delta.rs's detect_scrolls. The
// unique-match pass there is documented as acceptable O(N^2) for
// rows<=300; this implementation takes the explicitly-permitted O(N)
// alternative via a hash occurrence count map, with identical
// observable behavior.
func detectScrolls(old, new []uint64) []ScrollOp {
	n := len(new)
	if n == 0 || len(old) != n {
		return nil
	}

	countNew := make(map[uint64]int, n)
	countOld := make(map[uint64]int, n)
	firstOld := make(map[uint64]int, n)
	for i, h := range new {
		if h != 0 {
			countNew[h]++
		}
	}
	for j, h := range old {
		if h != 0 {
			countOld[h]++
			if _, seen := firstOld[h]; !seen {
				firstOld[h] = j
			}
		}
	}

	match := make([]int, n) // -1 = unmatched
	for i := range match {
		match[i] = -1
	}

	// 1. Unique match pass.
	for i, h := range new {
		if h == 0 {
			continue
		}
		if countNew[h] == 1 && countOld[h] == 1 {
			match[i] = firstOld[h]
		}
	}

	// 2. Extension pass: promote consistent neighbors of each match.
	for i := 0; i < n; i++ {
		if match[i] < 0 {
			continue
		}
		j := match[i]
		for k := 1; i+k < n && j+k < n; k++ {
			if match[i+k] >= 0 {
				break
			}
			if new[i+k] == 0 || new[i+k] != old[j+k] {
				break
			}
			match[i+k] = j + k
		}
		for k := 1; i-k >= 0 && j-k >= 0; k++ {
			if match[i-k] >= 0 {
				break
			}
			if new[i-k] == 0 || new[i-k] != old[j-k] {
				break
			}
			match[i-k] = j - k
		}
	}

	// 3. Hunk pass.
	var hunks []ScrollOp
	i := 0
	for i < n {
		if match[i] < 0 {
			i++
			continue
		}
		start := i
		shift := match[i] - i
		size := 1
		k := i + 1
		for k < n && match[k] >= 0 && match[k]-k == shift {
			size++
			k++
		}
		if size >= 3 && size+min(size/8, 2) >= abs(shift) {
			hunks = append(hunks, ScrollOp{Start: start, Size: size, Shift: shift})
		}
		i = k
	}
	return hunks
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
