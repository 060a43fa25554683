package enumstring

// Hash computes the 32-bit djb2 hash of s: seed 5381, then for each byte
// hash = hash*33 + byte. This is the exact function used by the label index;
// it is exported so callers that persist or compare hashes externally can
// reproduce it bit-for-bit.
func Hash(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint32(s[i])
	}
	return h
}

// slotHash returns the hash stored in the index for s. Hash value 0 marks an
// empty slot, so the rare label whose djb2 hash is exactly 0 is remapped to 1.
// The remap is applied identically at build and lookup time, and slots verify
// label bytes on a hash match, so the remap can only lengthen a probe chain,
// never change a result.
func slotHash(s string) uint32 {
	if h := Hash(s); h != 0 {
		return h
	}
	return 1
}

// foldByte lowercases a single ASCII byte. Non-letter and non-ASCII bytes
// pass through unchanged.
func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// foldEqual reports whether a and b are equal under per-byte ASCII case
// folding. Unlike strings.EqualFold it performs no Unicode folding; the
// case-insensitive lookup is defined byte-wise.
func foldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}
	return true
}

// hashSlot is one entry of the open-addressing index. A zero hash marks an
// empty slot. The label is stored alongside the hash so lookups re-verify
// the actual bytes after a hash match instead of trusting hash equality.
type hashSlot[E Enum] struct {
	hash  uint32
	label string
	enum  E
}

// hashIndex accelerates exact-match label lookups to average O(1).
// It is built once from the mapping entries and never modified.
type hashIndex[E Enum] struct {
	slots []hashSlot[E]
}

// buildIndex constructs the open-addressing table from entries in table
// order. The table has 2N slots (constant 50% load factor); collisions are
// resolved by linear probing with wraparound. Because entries are inserted
// in table order, entries sharing a probe chain keep insertion order, which
// makes duplicate-label lookups resolve to the earliest entry.
func buildIndex[E Enum](entries []Pair[E]) hashIndex[E] {
	size := 2 * len(entries)
	if size == 0 {
		return hashIndex[E]{}
	}
	slots := make([]hashSlot[E], size)
	for _, p := range entries {
		h := slotHash(p.Label)
		i := int(h % uint32(size))
		for slots[i].hash != 0 {
			i = (i + 1) % size
		}
		slots[i] = hashSlot[E]{hash: h, label: p.Label, enum: p.Enum}
	}
	return hashIndex[E]{slots: slots}
}

// lookup resolves label to its enumerator. Probing stops at the first empty
// slot; a slot matches only if both its stored hash and its stored label
// bytes equal the query.
func (idx hashIndex[E]) lookup(label string) (E, bool) {
	var zero E
	size := len(idx.slots)
	if size == 0 {
		return zero, false
	}
	h := slotHash(label)
	i := int(h % uint32(size))
	for idx.slots[i].hash != 0 {
		if idx.slots[i].hash == h && idx.slots[i].label == label {
			return idx.slots[i].enum, true
		}
		i = (i + 1) % size
	}
	return zero, false
}
