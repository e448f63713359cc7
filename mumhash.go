package mumhash

import (
	"encoding/binary"
	"unsafe"
)

// Secret schedule from the reference implementation. Hardcoded so the
// outputs are deterministic; this is a statistical decorrelator, not a
// cryptographic secret.
const (
	secret0 = uint64(0xa0761d6478bd642f)
	secret1 = uint64(0xe7037ed1a0b428db)
	secret2 = uint64(0x8ebc6af09c88c6e3)
	secret3 = uint64(0x589965cc75374cc3)

	// Golden-ratio constant shared by the integer hash and the combine fold.
	phi64 = uint64(0x9E3779B97F4A7C15)
	phi32 = uint64(0x9e3779b9)
)

func r8(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func r4(b []byte) uint64 { return uint64(binary.LittleEndian.Uint32(b)) }

// r3 packs 1, 2, or 3 bytes into one word. For k == 1 all three positions
// collapse onto b[0]; that degenerate read is part of the algorithm.
func r3(b []byte, k int) uint64 {
	return uint64(b[0])<<16 | uint64(b[k>>1])<<8 | uint64(b[k-1])
}

// Sum64 returns the 64-bit digest of data.
//
// Buffers of at most 16 bytes are consumed with a fixed number of reads
// regardless of exact length; the read windows overlap for most lengths in
// that range, which is intentional. Longer buffers are consumed 16 bytes at
// a time, with three independent accumulators above 48 bytes.
func Sum64(data []byte) uint64 {
	s := len(data)
	seed := secret0
	var a, c uint64

	if s <= 16 {
		if s >= 4 {
			a = r4(data)<<32 | r4(data[(s>>3)<<2:])
			c = r4(data[s-4:])<<32 | r4(data[s-4-((s>>3)<<2):])
		} else if s > 0 {
			a = r3(data, s)
		}
	} else {
		l := s
		i := 0
		if l > 48 {
			see1 := seed
			see2 := seed
			for ; l > 48; l -= 48 {
				seed = mix(r8(data[i:])^secret1, r8(data[i+8:])^seed)
				see1 = mix(r8(data[i+16:])^secret2, r8(data[i+24:])^see1)
				see2 = mix(r8(data[i+32:])^secret3, r8(data[i+40:])^see2)
				i += 48
			}
			seed ^= see1 ^ see2
		}
		for ; l > 16; l -= 16 {
			seed = mix(r8(data[i:])^secret1, r8(data[i+8:])^seed)
			i += 16
		}
		// The tail re-reads up to 16 bytes of the last full block.
		a = r8(data[i+l-16:])
		c = r8(data[i+l-8:])
	}

	return mix(secret1^uint64(s), mix(a^secret1, c^seed))
}

// SumString returns the 64-bit digest of s without copying it. The digest
// equals Sum64 of the string's bytes.
func SumString(s string) uint64 {
	return Sum64(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Uint64 returns the 64-bit digest of a single integer value.
func Uint64(x uint64) uint64 {
	return mix(x, phi64)
}
