package rbtree

import (
	"github.com/amp-labs/amp-ordered/assert"
	"github.com/amp-labs/amp-ordered/optional"
)

// Remove deletes one element equal to e and reports whether one was found.
// Which of several equal elements goes is unspecified.
func (t *Tree[T]) Remove(e T) bool {
	z := t.findNode(e)
	if z == nil {
		return false
	}

	t.deleteNode(z)

	return true
}

// RemoveAll deletes every element equal to e and returns how many were removed.
func (t *Tree[T]) RemoveAll(e T) int {
	removed := 0

	for t.Remove(e) {
		removed++
	}

	return removed
}

// PopMin removes and returns the smallest element, or None if the tree is empty.
func (t *Tree[T]) PopMin() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(t.deleteNode(t.root.minNode()))
}

// deleteNode unlinks the element held by z and returns it.
//
// A node with two children takes over its in-order successor's element and
// the successor node is unlinked instead, so node identity is not preserved.
// The unlinked node has at most one child, which is spliced into its place.
// Removing a black node leaves its path one black short; a red replacement
// absorbs that by turning black, otherwise fixupDelete repairs it.
//
// nolint:varnamelen // Standard red-black tree variable names
func (t *Tree[T]) deleteNode(z *node[T]) T {
	removed := z.elem

	if z.left != nil && z.right != nil {
		s := z.right.minNode()
		z.elem = s.elem
		z = s
	}

	child := z.left
	if child == nil {
		child = z.right
	}

	parent := z.parent
	if child != nil {
		child.parent = parent
	}

	t.replaceChild(parent, z, child)

	if z.color == black {
		if isRed(child) {
			child.color = black
		} else {
			t.fixupDelete(child, parent)
		}
	}

	z.left, z.right, z.parent = nil, nil, nil
	t.count--
	t.recordRemoval()

	return removed
}

// fixupDelete restores black-height balance after a black node was removed
// from above x. x carries an extra black and may be nil, so its parent is
// passed explicitly. The cases follow the sibling w:
//  1. Sibling is red - rotate and recolor to create a black sibling
//  2. Sibling is black with two black children - recolor sibling, move the extra black up
//  3. Sibling is black with only its inner child red - rotate it into case 4
//  4. Sibling is black with a red outer child - rotate the parent and recolor; done
//
// The loop ends when x is red (it absorbs the extra black) or x is the root.
//
// nolint:varnamelen,dupl // Standard red-black tree variable names; symmetric cases
func (t *Tree[T]) fixupDelete(x, parent *node[T]) {
	for x != t.root && !isRed(x) {
		t.stats.deleteFixups.Inc()

		if x == parent.left {
			w := parent.right
			assert.True(w != nil, "corrupt tree: black deficit under %v with no sibling", parent)

			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}

			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
		} else {
			w := parent.left
			assert.True(w != nil, "corrupt tree: black deficit under %v with no sibling", parent)

			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}

			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
		}

		x = t.root
	}

	if x != nil {
		x.color = black
	}
}
