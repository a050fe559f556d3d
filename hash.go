package vtscreen

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// lineHash computes a 64-bit fingerprint of a row of cells. The result
// is 0 iff every cell is blank (see Cell.isBlank); for any non-blank
// row the result is guaranteed non-zero — if the raw FNV-1a mix
// happens to land on 0, it is remapped to 1 inside this function, not
// at call sites.
//
// Grounded on original_source/src/delta.rs's hash_line, re-expressed
// as a standard FNV-1a mix (the Rust original used a bespoke mixer;
// FNV-1a is the idiomatic Go choice for this shape of fingerprinting
// and is deterministic/stable across process runs as required).
func lineHash(cells []Cell) uint64 {
	blank := true
	h := fnvOffset64
	var rn, fg, bg [4]byte
	for _, c := range cells {
		if !c.isBlank() {
			blank = false
		}
		putUint32LE(rn[:], uint32(c.Rune))
		putUint32LE(fg[:], c.Style.FG.encode())
		putUint32LE(bg[:], c.Style.BG.encode())
		h = fnvMix(h, rn[:])
		h = fnvMix(h, []byte{byte(c.Style.Attr)})
		h = fnvMix(h, fg[:])
		h = fnvMix(h, bg[:])
	}
	if blank {
		return 0
	}
	if h == 0 {
		return 1
	}
	return h
}

func fnvMix(h uint64, data []byte) uint64 {
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
