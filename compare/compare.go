// Package compare provides three-way comparison functions used to order the
// elements of sorted containers.
package compare

import (
	"cmp"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator returns a negative number when a sorts before b, a positive
// number when a sorts after b, and zero when the two are equivalent.
// A Comparator must describe a consistent total preorder: sorted containers
// assume the same pair always compares the same way.
type Comparator[T any] func(a, b T) int

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Natural returns the comparator for the standard ordering of T.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that orders elements opposite to c.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Equal reports whether a and b are equivalent under c.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

// By orders values of T by a projected key. Only the key takes part in the
// comparison, so two values with equal keys compare as equal even when the
// rest of the value differs.
//
// Example:
//
//	byName := compare.By(func(u User) string { return u.Name }, compare.Natural[string]())
func By[T, K any](key func(T) K, keyOrder Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return keyOrder(key(a), key(b))
	}
}

// Then returns a comparator that breaks ties in c using next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if d := c(a, b); d != 0 {
			return d
		}

		return next(a, b)
	}
}

// NaturalStrings orders strings the way a human would, treating embedded
// runs of digits as numbers: "file2" sorts before "file10". natsort.Compare
// reports true for equal inputs, so a pair is ordered only when exactly one
// direction holds; everything else compares equal.
func NaturalStrings() Comparator[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case less && !greater:
			return -1
		case greater && !less:
			return 1
		default:
			return 0
		}
	}
}

// Collated orders strings by the collation rules of lang, so "Apple" sorts
// next to "apple" and "é" next to "e". The returned comparator owns a
// collator and must not be shared between goroutines.
func Collated(lang language.Tag) Comparator[string] {
	c := collate.New(lang)

	return c.CompareString
}
