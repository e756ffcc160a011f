package rbtree

import (
	"fmt"

	"github.com/amp-labs/amp-ordered/errors"
)

// Validate checks every structural invariant of the tree and returns all
// violations found, each wrapping errors.ErrCorruptTree. It returns nil for a
// well-formed tree. Validate is O(n) and meant for tests and diagnostics.
func (t *Tree[T]) Validate() error {
	var errs errors.Collection

	if t.root != nil {
		if t.root.color != black {
			errs.Add(corrupt("root %v is not black", t.root))
		}

		if t.root.parent != nil {
			errs.Add(corrupt("root %v has parent %v", t.root, t.root.parent))
		}
	}

	size, _ := t.checkNode(t.root, &errs)
	if size != t.count {
		errs.Add(corrupt("count is %d but %d nodes are reachable", t.count, size))
	}

	var prev *node[T]

	t.checkOrder(t.root, &prev, &errs)

	return errs.GetError()
}

// checkNode validates links and colors under x and returns the subtree size
// and its black height (nil leaves count as one black node).
func (t *Tree[T]) checkNode(x *node[T], errs *errors.Collection) (size, blackHeight int) {
	if x == nil {
		return 0, 1
	}

	if x.left != nil && x.left.parent != x {
		errs.Add(corrupt("left child of %v has parent %v", x, x.left.parent))
	}

	if x.right != nil && x.right.parent != x {
		errs.Add(corrupt("right child of %v has parent %v", x, x.right.parent))
	}

	if isRed(x) && (isRed(x.left) || isRed(x.right)) {
		errs.Add(corrupt("red node %v has a red child", x))
	}

	leftSize, leftHeight := t.checkNode(x.left, errs)
	rightSize, rightHeight := t.checkNode(x.right, errs)

	if leftHeight != rightHeight {
		errs.Add(corrupt("black height below %v differs: left %d, right %d", x, leftHeight, rightHeight))
	}

	blackHeight = leftHeight
	if x.color == black {
		blackHeight++
	}

	return leftSize + rightSize + 1, blackHeight
}

// checkOrder walks in order and reports any element smaller than its predecessor.
func (t *Tree[T]) checkOrder(x *node[T], prev **node[T], errs *errors.Collection) {
	if x == nil {
		return
	}

	t.checkOrder(x.left, prev, errs)

	if *prev != nil && t.cmp((*prev).elem, x.elem) > 0 {
		errs.Add(corrupt("%v sorts after its successor %v", *prev, x))
	}

	*prev = x

	t.checkOrder(x.right, prev, errs)
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errors.ErrCorruptTree, fmt.Sprintf(format, args...))
}
