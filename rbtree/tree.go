package rbtree

import (
	"cmp"

	"github.com/amp-labs/amp-ordered/compare"
	"github.com/amp-labs/amp-ordered/errors"
	"github.com/amp-labs/amp-ordered/optional"
)

// InsertMode selects how Insert treats an element equal to one already stored.
type InsertMode int

const (
	// AlwaysAdd stores the element unconditionally; the tree grows as a multiset.
	AlwaysAdd InsertMode = iota

	// AddIfMissing stores the element only if no equal element is present.
	AddIfMissing

	// OverwriteIfExisting replaces the first equal element found in place,
	// or stores the element if none is present.
	OverwriteIfExisting
)

// String returns the name of the mode.
func (m InsertMode) String() string {
	switch m {
	case AlwaysAdd:
		return "AlwaysAdd"
	case AddIfMissing:
		return "AddIfMissing"
	case OverwriteIfExisting:
		return "OverwriteIfExisting"
	default:
		return "InsertMode(?)"
	}
}

// Tree is an ordered multiset of T kept in a red-black tree.
// The zero value is not usable; construct trees with New or NewOrdered.
type Tree[T any] struct {
	root    *node[T]
	count   int
	cmp     compare.Comparator[T]
	name    string
	stats   *counters
	metrics *treeMetrics
}

// New creates an empty tree ordered by order.
// It returns ErrNilComparator if order is nil.
func New[T any](order compare.Comparator[T], opts ...Option) (*Tree[T], error) {
	if order == nil {
		return nil, errors.ErrNilComparator
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[T]{
		cmp:     order,
		name:    o.name,
		stats:   newCounters(),
		metrics: newTreeMetrics(o.name),
	}, nil
}

// NewOrdered creates an empty tree using the standard ordering of T.
func NewOrdered[T cmp.Ordered](opts ...Option) *Tree[T] {
	t, _ := New(compare.Natural[T](), opts...)

	return t
}

// Name returns the name given with WithName, or "".
func (t *Tree[T]) Name() string {
	return t.name
}

// Len returns the number of elements, counting duplicates. O(1).
func (t *Tree[T]) Len() int {
	return t.count
}

// Clear removes every element.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
	t.metrics.setElements(0)
}

// findNode descends from the root and returns the first node whose element
// compares equal to e, or nil.
func (t *Tree[T]) findNode(e T) *node[T] {
	x := t.root

	for x != nil {
		diff := t.cmp(e, x.elem)

		switch {
		case diff == 0:
			return x
		case diff < 0:
			x = x.left
		default:
			x = x.right
		}
	}

	return nil
}

// Find returns the stored element equal to e. When duplicates exist, which
// one is returned is unspecified.
func (t *Tree[T]) Find(e T) optional.Value[T] {
	if x := t.findNode(e); x != nil {
		return optional.Some(x.elem)
	}

	return optional.None[T]()
}

// Contains reports whether an element equal to e is stored.
func (t *Tree[T]) Contains(e T) bool {
	return t.findNode(e) != nil
}

// Occurrences returns how many stored elements compare equal to e.
func (t *Tree[T]) Occurrences(e T) int {
	return t.countEqual(t.root, e)
}

// countEqual counts matches under x. Rotations can leave duplicates on both
// sides of a matching node, so a match searches both subtrees.
func (t *Tree[T]) countEqual(x *node[T], e T) int {
	for x != nil {
		diff := t.cmp(e, x.elem)

		switch {
		case diff < 0:
			x = x.left
		case diff > 0:
			x = x.right
		default:
			return 1 + t.countEqual(x.left, e) + t.countEqual(x.right, e)
		}
	}

	return 0
}

// Min returns the smallest element.
func (t *Tree[T]) Min() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(t.root.minNode().elem)
}

// Max returns the largest element.
func (t *Tree[T]) Max() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(t.root.maxNode().elem)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](x *node[T]) int {
	if x == nil {
		return 0
	}

	return 1 + max(height(x.left), height(x.right))
}
