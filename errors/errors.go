// Package errors holds the sentinel errors reported by the sorted containers
// and a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrNilComparator is returned when a container is constructed without an ordering.
	ErrNilComparator = errors.New("nil comparator")

	// ErrDuplicateKey is returned when adding a key that is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound is returned when reading a key that is not present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptTree wraps every red-black invariant violation found by validation.
	ErrCorruptTree = errors.New("corrupt red-black tree")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple checks and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
