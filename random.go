package willowkit

import (
	"iter"
	"math/rand/v2"
	"slices"
)

// Enum is satisfied by the integer types used for iota enumerations.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// intN returns a uniform index in [0, n). A nil r uses the package-level
// math/rand/v2 generator.
func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// RandomOne returns a uniformly random element of items, or the zero value
// of T when items is empty.
func RandomOne[T any](r *rand.Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[intN(r, len(items))]
}

// RandomOneSeq materializes seq and returns a uniformly random element, or
// the zero value of T when the sequence yields nothing.
func RandomOneSeq[T any](r *rand.Rand, seq iter.Seq[T]) T {
	return RandomOne(r, slices.Collect(seq))
}

// RandomOneExcept drops every element of items equal to one of except and
// returns a uniformly random element of the rest, or the zero value of T
// when nothing is left.
func RandomOneExcept[T comparable](r *rand.Rand, items []T, except ...T) T {
	if len(except) == 0 {
		return RandomOne(r, items)
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !slices.Contains(except, it) {
			kept = append(kept, it)
		}
	}
	return RandomOne(r, kept)
}

// enumValues lists E(0) through E(count-1).
func enumValues[E Enum](count E) []E {
	if count <= 0 {
		return nil
	}
	values := make([]E, 0, int(count))
	for v := E(0); v < count; v++ {
		values = append(values, v)
	}
	return values
}

// RandomEnum returns a uniformly random value in [0, count) of the
// enumeration E. count is the enumeration's size, usually an unexported
// trailing iota sentinel. Returns the zero value when count <= 0.
func RandomEnum[E Enum](r *rand.Rand, count E) E {
	if count <= 0 {
		return 0
	}
	return E(intN(r, int(count)))
}

// RandomEnumExcept is RandomEnum with the values in except removed. Returns
// the zero value when except covers the whole enumeration. It lists every
// value, so count should be a real enumeration size.
func RandomEnumExcept[E Enum](r *rand.Rand, count E, except ...E) E {
	return RandomOneExcept(r, enumValues(count), except...)
}
