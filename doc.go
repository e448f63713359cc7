// Package mumhash provides a stripped-down Go implementation of the wyhash
// non-cryptographic hash, plus generic helpers for reducing arbitrary values
// to 64-bit digests and combining several digests into one.
//
// It offers one-shot sums over byte slices, strings, and integers, a
// streaming hasher that satisfies [hash.Hash64], per-type [Hasher] dispatch,
// and boost-style digest combination for pairs, tuples, and sequences.
//
// The seed and secret schedule are hardcoded, so digests are deterministic
// across runs and processes. The hash is not resistant to deliberately
// constructed collisions and must not be used where adversarial input
// matters; use a keyed cryptographic hash for that.
package mumhash
