//go:build purego

package mumhash

// mum computes the full 128-bit product of a and b without a wide multiply.
func mum(a, b uint64) (lo, hi uint64) {
	return mumPortable(a, b)
}
