package rbtree

import "iter"

// All returns an iterator over the elements in ascending order, duplicates
// included. Every range over the returned sequence starts a fresh traversal
// from the current smallest element, so it can be reused after mutations.
// Mutating the tree during a traversal gives undefined results.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}

		for x := t.root.minNode(); x != nil && yield(x.elem); x = x.next() {
		}
	}
}

// Backward returns an iterator over the elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}

		for x := t.root.maxNode(); x != nil && yield(x.elem); x = x.prev() {
		}
	}
}

// CopyTo writes the elements in ascending order into dst starting at dst[start]
// and returns how many were written. Copying stops at the end of dst or of the
// tree, whichever comes first. A start outside [0, len(dst)] writes nothing.
func (t *Tree[T]) CopyTo(dst []T, start int) int {
	if start < 0 || start > len(dst) {
		return 0
	}

	n := 0

	for e := range t.All() {
		if start+n >= len(dst) {
			break
		}

		dst[start+n] = e
		n++
	}

	return n
}

// Slice returns the elements in ascending order.
func (t *Tree[T]) Slice() []T {
	out := make([]T, t.count)
	t.CopyTo(out, 0)

	return out
}
