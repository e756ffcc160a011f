// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
// Generic containers use it to build lookup probes and empty results:
//
//	probe := tuple.NewTuple2(key, zero.Value[V]())
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
