package mumhash

// mumPortable rebuilds the 128-bit product of a and b from four 32x32->64
// partial products with explicit carry propagation. It must stay bit-exact
// with the native path: digests computed through it have to match digests
// computed with a wide multiply.
func mumPortable(a, b uint64) (lo, hi uint64) {
	ha, la := a>>32, a&0xffffffff
	hb, lb := b>>32, b&0xffffffff

	rh := ha * hb
	rm0 := ha * lb
	rm1 := hb * la
	rl := la * lb

	t := rl + rm0<<32
	var carry uint64
	if t < rl {
		carry = 1
	}
	lo = t + rm1<<32
	if lo < t {
		carry++
	}
	hi = rh + rm0>>32 + rm1>>32 + carry
	return lo, hi
}

// mix folds the 128-bit product of a and b into one 64-bit word, aka MUM.
func mix(a, b uint64) uint64 {
	lo, hi := mum(a, b)
	return lo ^ hi
}
