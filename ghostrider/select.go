package ghostrider

// selectIndices fills dst with an ordering of the indices 0..len(dst)
// derived from the seed. The 64 nibbles of the seed are scanned in order,
// low nibble of each byte first; each nibble picks index nibble mod n, and
// the first occurrence of an index fixes its position. Indices never picked
// by the scan are appended in ascending order, so the result is always a
// permutation of 0..len(dst).
func selectIndices(dst []uint32, seed *[32]byte) {
	n := uint32(len(dst))

	var selected [16]bool
	k := uint32(0)

	for i := uint32(0); i < 64 && k < n; i++ {
		nibble := (seed[i/2] >> ((i & 1) * 4)) & 0x0F
		index := uint32(nibble) % n
		if !selected[index] {
			selected[index] = true
			dst[k] = index
			k++
		}
	}

	for i := uint32(0); i < n && k < n; i++ {
		if !selected[i] {
			dst[k] = i
			k++
		}
	}
}
