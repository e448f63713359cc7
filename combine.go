package mumhash

import "iter"

// Combine folds the digest of each value into seed in argument order and
// returns the new seed, using the boost hash_combine formula. It is
// order-sensitive: Combine(s, a, b) and Combine(s, b, a) generally differ.
// With no values the seed is returned unchanged.
func Combine(seed uint64, values ...any) uint64 {
	for _, v := range values {
		seed ^= Of(v) + phi32 + seed<<6 + seed>>2
	}
	return seed
}

// Pair returns the digest of an ordered pair.
func Pair[T, U any](first T, second U) uint64 {
	return Combine(0, first, second)
}

// Tuple returns the digest of a fixed list of heterogeneous values,
// combined in argument order from a zero seed.
func Tuple(values ...any) uint64 {
	return Combine(0, values...)
}

// Sequence returns the digest of a slice, combining elements in order from
// a zero seed. An empty slice yields 0.
func Sequence[E any](elems []E) uint64 {
	var seed uint64
	for _, e := range elems {
		seed = Combine(seed, e)
	}
	return seed
}

// Seq is [Sequence] for an iterator, consuming it in iteration order.
func Seq[E any](it iter.Seq[E]) uint64 {
	var seed uint64
	for e := range it {
		seed = Combine(seed, e)
	}
	return seed
}
