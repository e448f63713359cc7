package mumhash

import "testing"

// color is an enum-style named integer type.
type color uint8

const (
	red color = iota
	green
	blue
)

type versioned struct {
	major, minor int
}

func (v versioned) Hash64() uint64 {
	return uint64(v.major)<<32 | uint64(v.minor)
}

func TestIntWidensAndSignExtends(t *testing.T) {
	if got, want := Int(int8(-1)), Uint64(^uint64(0)); got != want {
		t.Errorf("Int(int8(-1)) = %#x, want %#x", got, want)
	}
	if Int(int8(-1)) != Int(int64(-1)) {
		t.Error("sign extension differs between int8 and int64")
	}
	if Int(uint8(200)) != Uint64(200) {
		t.Error("unsigned widening changed the value")
	}
	if Int(green) != Uint64(1) {
		t.Error("enum-style type did not hash via its underlying integer")
	}
}

func TestForScalarShapes(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		h := For[int]()
		if !h.Avalanching() {
			t.Fatal("integer hasher must be avalanching")
		}
		if got, want := h.Hash(42), Uint64(42); got != want {
			t.Fatalf("Hash(42) = %#x, want %#x", got, want)
		}
		if got, want := h.Hash(-1), Uint64(^uint64(0)); got != want {
			t.Fatalf("Hash(-1) = %#x, want %#x", got, want)
		}
	})

	t.Run("enum", func(t *testing.T) {
		h := For[color]()
		if !h.Avalanching() {
			t.Fatal("enum hasher must be avalanching")
		}
		if got, want := h.Hash(blue), Uint64(2); got != want {
			t.Fatalf("Hash(blue) = %#x, want %#x", got, want)
		}
	})

	t.Run("bool", func(t *testing.T) {
		h := For[bool]()
		if h.Hash(true) != Bool(true) || h.Hash(false) != Bool(false) {
			t.Fatal("bool hasher disagrees with Bool")
		}
		if h.Hash(true) == h.Hash(false) {
			t.Fatal("true and false collide")
		}
	})

	t.Run("string", func(t *testing.T) {
		h := For[string]()
		if !h.Avalanching() {
			t.Fatal("string hasher must be avalanching")
		}
		if got, want := h.Hash("abc"), SumString("abc"); got != want {
			t.Fatalf("Hash(abc) = %#x, want %#x", got, want)
		}
	})

	t.Run("namedString", func(t *testing.T) {
		type name string
		h := For[name]()
		if got, want := h.Hash("abc"), SumString("abc"); got != want {
			t.Fatalf("named string digest %#x, want %#x", got, want)
		}
	})

	t.Run("float", func(t *testing.T) {
		h := For[float64]()
		if h.Hash(0) != h.Hash(negZero()) {
			t.Fatal("0.0 and -0.0 must hash equally")
		}
		if h.Hash(1.5) == h.Hash(2.5) {
			t.Fatal("distinct floats collide")
		}
	})

	t.Run("byteArray", func(t *testing.T) {
		h := For[[4]byte]()
		if !h.Avalanching() {
			t.Fatal("byte array hasher must be avalanching")
		}
		key := [4]byte{'a', 'b', 'c', 'd'}
		if got, want := h.Hash(key), Sum64(key[:]); got != want {
			t.Fatalf("Hash = %#x, want %#x", got, want)
		}
	})
}

func TestForPointerIsIdentity(t *testing.T) {
	h := For[*int]()
	if !h.Avalanching() {
		t.Fatal("pointer hasher must be avalanching")
	}

	a, b := new(int), new(int)
	*a, *b = 7, 7
	if h.Hash(a) == h.Hash(b) {
		t.Fatal("distinct addresses with equal pointees must hash differently")
	}
	if h.Hash(a) != h.Hash(a) {
		t.Fatal("same address must hash identically")
	}
	if h.Hash(a) != Identity(a) {
		t.Fatal("pointer hasher disagrees with Identity")
	}
}

func TestForHashableFallback(t *testing.T) {
	h := For[versioned]()
	if h.Avalanching() {
		t.Fatal("Hashable fallback must not claim the avalanching property")
	}
	v := versioned{major: 1, minor: 2}
	if got, want := h.Hash(v), v.Hash64(); got != want {
		t.Fatalf("Hash = %#x, want %#x", got, want)
	}
}

func TestForRuntimeFallback(t *testing.T) {
	type key struct{ a, b int }
	h := For[key]()
	if h.Avalanching() {
		t.Fatal("runtime fallback must not claim the avalanching property")
	}
	k := key{a: 1, b: 2}
	if h.Hash(k) != h.Hash(k) {
		t.Fatal("fallback hasher unstable for equal values")
	}
	if h.Hash(k) == h.Hash(key{a: 2, b: 1}) {
		t.Fatal("swapped fields collide")
	}
}

func TestIdentityIgnoresPointee(t *testing.T) {
	a, b := new(string), new(string)
	*a, *b = "same", "same"
	if Identity(a) == Identity(b) {
		t.Fatal("equal pointees at distinct addresses must hash differently")
	}
	first := Identity(a)
	for i := 0; i < 5; i++ {
		if Identity(a) != first {
			t.Fatal("address digest unstable")
		}
	}
	*a = "changed"
	if Identity(a) != first {
		t.Fatal("Identity must not depend on pointee content")
	}
}

func TestOfMatchesTypedPaths(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want uint64
	}{
		{"string", "abc", SumString("abc")},
		{"bytes", []byte("abc"), Sum64([]byte("abc"))},
		{"bool", true, Bool(true)},
		{"int", 42, Uint64(42)},
		{"negative", int16(-3), Uint64(^uint64(2))},
		{"uint64", uint64(7), Uint64(7)},
		{"enum", blue, Uint64(2)},
		{"hashable", versioned{1, 2}, versioned{1, 2}.Hash64()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.v); got != tt.want {
				t.Fatalf("Of(%v) = %#x, want %#x", tt.v, got, tt.want)
			}
		})
	}
}

func TestOfPanicsOnUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported shape")
		}
	}()
	Of(map[int]int{})
}

// negZero returns -0.0 without tripping constant folding.
func negZero() float64 {
	zero := 0.0
	return -zero
}
