// Package sortable provides sortable wrapper types for primitive types and
// adapts Equals/LessThan types to three-way comparators.
package sortable

import (
	"github.com/amp-labs/amp-ordered/compare"
)

// Sortable is implemented by types that know their own equality and ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare orders a and b by their LessThan and Equals methods.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Comparator returns a compare.Comparator backed by T's own ordering, so any
// Sortable type can key a red-black tree or sorted map.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
