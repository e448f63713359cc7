package mumhash

import (
	"fmt"
	"hash/maphash"
	"math"
	"reflect"
	"unsafe"
)

// Integer matches the built-in integer types and any named type whose
// underlying type is one of them, which covers enum-style constants.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int hashes an integer value, widening it to 64 bits first. Signed values
// sign-extend, so Int(int8(-1)) and Int(int64(-1)) produce the same digest.
func Int[T Integer](v T) uint64 {
	return Uint64(uint64(int64(v)))
}

// Bool hashes a boolean as the integer 0 or 1.
func Bool(b bool) uint64 {
	if b {
		return Uint64(1)
	}
	return Uint64(0)
}

// Identity hashes the address p itself and never reads the pointee. Two
// pointers to equal but distinct objects hash differently, and the same
// pointer always hashes identically. Use a content hash like [Sum64] when
// the pointee's value is what should be compared.
func Identity[T any](p *T) uint64 {
	return Uint64(uint64(uintptr(unsafe.Pointer(p))))
}

// Hashable is implemented by types that supply their own hashing facility,
// consistent with their equality. [For] and [Of] defer to it before any
// shape-based rule.
type Hashable interface {
	Hash64() uint64
}

// fallbackSeed randomizes the runtime-hash fallback once per process. Only
// digests produced through the [Hashable] or runtime fallback paths depend
// on it; everything built on the core mix is stable across processes.
var fallbackSeed = maphash.MakeSeed()

// Hasher computes 64-bit digests for values of type K using a rule selected
// once, at construction, from the shape of K.
type Hasher[K comparable] struct {
	fn          func(K) uint64
	avalanching bool
}

// Hash returns the digest of k.
func (h Hasher[K]) Hash(k K) uint64 { return h.fn(k) }

// Avalanching reports whether digests from this hasher are already
// well-distributed in their low bits, so open-addressing tables need no
// secondary re-mixing before masking them down to a bucket index. It is
// true for every shape routed through the core mix and false for the
// [Hashable] and runtime fallback paths.
func (h Hasher[K]) Avalanching() bool { return h.avalanching }

// For selects the hashing rule for K: integers, booleans, floats, strings,
// and byte arrays route through the core mix; pointer shapes hash their
// address as [Identity] does; types implementing [Hashable] use their own
// facility; any other comparable type falls back to the runtime's hash for
// the type.
func For[K comparable]() Hasher[K] {
	var zero K
	if _, ok := any(zero).(Hashable); ok {
		return Hasher[K]{fn: func(k K) uint64 { return any(k).(Hashable).Hash64() }}
	}

	h := Hasher[K]{avalanching: true}
	rt := reflect.TypeOf(zero)
	switch rt.Kind() {
	case reflect.String:
		h.fn = func(k K) uint64 { return SumString(*(*string)(unsafe.Pointer(&k))) }
	case reflect.Bool:
		h.fn = func(k K) uint64 { return Bool(*(*bool)(unsafe.Pointer(&k))) }
	case reflect.Int:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*int)(unsafe.Pointer(&k)))) }
	case reflect.Int8:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*int8)(unsafe.Pointer(&k)))) }
	case reflect.Int16:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*int16)(unsafe.Pointer(&k)))) }
	case reflect.Int32:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*int32)(unsafe.Pointer(&k)))) }
	case reflect.Int64:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*int64)(unsafe.Pointer(&k)))) }
	case reflect.Uint:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*uint)(unsafe.Pointer(&k)))) }
	case reflect.Uint8:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*uint8)(unsafe.Pointer(&k)))) }
	case reflect.Uint16:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*uint16)(unsafe.Pointer(&k)))) }
	case reflect.Uint32:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*uint32)(unsafe.Pointer(&k)))) }
	case reflect.Uint64:
		h.fn = func(k K) uint64 { return Uint64(*(*uint64)(unsafe.Pointer(&k))) }
	case reflect.Uintptr, reflect.Pointer, reflect.UnsafePointer:
		h.fn = func(k K) uint64 { return Uint64(uint64(*(*uintptr)(unsafe.Pointer(&k)))) }
	case reflect.Float32:
		h.fn = func(k K) uint64 { return Uint64(floatBits(float64(*(*float32)(unsafe.Pointer(&k))))) }
	case reflect.Float64:
		h.fn = func(k K) uint64 { return Uint64(floatBits(*(*float64)(unsafe.Pointer(&k)))) }
	case reflect.Array:
		if rt.Elem().Kind() == reflect.Uint8 {
			n := rt.Len()
			h.fn = func(k K) uint64 { return Sum64(unsafe.Slice((*byte)(unsafe.Pointer(&k)), n)) }
			break
		}
		fallthrough
	default:
		h.avalanching = false
		h.fn = func(k K) uint64 { return maphash.Comparable(fallbackSeed, k) }
	}
	return h
}

// Of hashes a value of any supported shape. It is the dynamic counterpart
// of [For], used by [Combine] and friends for heterogeneous arguments. Of
// panics for shapes it has no rule for.
func Of(v any) uint64 {
	switch x := v.(type) {
	case Hashable:
		return x.Hash64()
	case string:
		return SumString(x)
	case []byte:
		return Sum64(x)
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Int(x)
	case uint8:
		return Int(x)
	case uint16:
		return Int(x)
	case uint32:
		return Int(x)
	case uint64:
		return Uint64(x)
	case uintptr:
		return Uint64(uint64(x))
	case float32:
		return Uint64(floatBits(float64(x)))
	case float64:
		return Uint64(floatBits(x))
	case unsafe.Pointer:
		return Uint64(uint64(uintptr(x)))
	}

	// Named scalar types land here.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Uint64(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Uint64(floatBits(rv.Float()))
	case reflect.String:
		return SumString(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Sum64(rv.Bytes())
		}
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return Uint64(uint64(rv.Pointer()))
	}
	panic(fmt.Sprintf("mumhash: unsupported type %T", v))
}

// floatBits maps a float to hashable bits, collapsing negative zero onto
// positive zero so equal values always hash equally.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}
