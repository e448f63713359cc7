package mumhash

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest64)(nil)
var _ hash.Hash64 = (*Digest64)(nil)

// Digest64 is a streaming hasher producing the same digest as [Sum64] over
// the concatenation of all written bytes. The mixing schedule depends on the
// total input length, so written bytes are buffered until a sum is requested.
type Digest64 struct {
	buf []byte
}

// New64 returns a streaming 64-bit hasher.
func New64() *Digest64 { return &Digest64{} }

// Write appends p to the pending input.
func (d *Digest64) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the current digest to b.
func (d *Digest64) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], d.Sum64())
	return append(b, out[:]...)
}

// Sum64 computes the digest of the accumulated input.
func (d *Digest64) Sum64() uint64 { return Sum64(d.buf) }

// Reset clears the accumulated input.
func (d *Digest64) Reset() { d.buf = d.buf[:0] }

// Size returns the digest size in bytes.
func (d *Digest64) Size() int { return 8 }

// BlockSize returns the write block size.
func (d *Digest64) BlockSize() int { return 1 }
