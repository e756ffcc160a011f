// Package hashing fingerprints ordered sequences so that two containers can
// be checked for identical content without holding both in memory.
package hashing

import (
	"fmt"
	"iter"
	"slices"

	"github.com/zeebo/xxh3"
)

// separator keeps adjacent elements from running together ("1","23" vs "12","3").
const separator = 0x1f

// Sequence returns the xxh3 digest of the %v rendering of every element of seq
// in iteration order. Equal sequences always produce equal digests.
func Sequence[T any](seq iter.Seq[T]) uint64 {
	h := xxh3.New()

	for v := range seq {
		_, _ = fmt.Fprint(h, v)
		_, _ = h.Write([]byte{separator})
	}

	return h.Sum64()
}

// Slice is Sequence over a slice.
func Slice[T any](values []T) uint64 {
	return Sequence(slices.Values(values))
}
