//go:build !purego

package mumhash

import "math/bits"

// mum computes the full 128-bit product of a and b using the platform's
// wide multiply.
func mum(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}
