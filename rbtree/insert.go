package rbtree

import (
	"github.com/amp-labs/amp-ordered/assert"
)

// Insert stores e according to mode and reports whether a new node was added.
//
//   - AlwaysAdd always adds and returns true.
//   - AddIfMissing returns false without changing anything when an equal
//     element exists.
//   - OverwriteIfExisting replaces the equal element in place and returns false.
//     The tree shape depends only on the ordering, so no rebalancing is needed.
//
// Ties route left, so a run of equal elements inserted with AlwaysAdd grows
// toward the left of the first one.
func (t *Tree[T]) Insert(e T, mode InsertMode) bool {
	var parent *node[T]

	pos := &t.root

	for x := *pos; x != nil; x = *pos {
		diff := t.cmp(e, x.elem)

		if diff == 0 {
			switch mode {
			case AddIfMissing:
				return false
			case OverwriteIfExisting:
				x.elem = e
				t.recordOverwrite()

				return false
			case AlwaysAdd:
			}
		}

		parent = x

		if diff <= 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}

	n := &node[T]{elem: e, color: red, parent: parent}
	*pos = n
	t.count++

	t.fixupInsert(n)
	t.recordInsert()

	return true
}

// fixupInsert restores red-black tree properties after linking the red node z.
// The only possible violation is a red z under a red parent:
//  1. Uncle is red - recolor parent, uncle, and grandparent, then continue from the grandparent
//  2. Uncle is black and z is an inner child - rotate z outward, turning it into case 3
//  3. Uncle is black and z is an outer child - rotate the grandparent and recolor
//
// nolint:varnamelen // Standard red-black tree variable names
func (t *Tree[T]) fixupInsert(z *node[T]) {
	for isRed(z.parent) {
		t.stats.insertFixups.Inc()

		p := z.parent
		g := p.parent // a red node is never the root

		if p == g.left {
			if u := g.right; isRed(u) {
				p.color = black
				u.color = black
				g.color = red
				z = g

				continue
			}

			if z == p.right {
				z = p
				t.rotateLeft(z)
				p = z.parent
			}

			p.color = black
			g.color = red
			t.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.color = black
				u.color = black
				g.color = red
				z = g

				continue
			}

			if z == p.left {
				z = p
				t.rotateRight(z)
				p = z.parent
			}

			p.color = black
			g.color = red
			t.rotateLeft(g)
		}
	}

	t.root.color = black
}

// replaceChild points parent's link that referred to old at repl instead,
// or the root if parent is nil. repl's parent link is left to the caller.
func (t *Tree[T]) replaceChild(parent, old, repl *node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		assert.True(parent.right == old, "corrupt tree: %v is not a child of %v", old, parent)

		parent.right = repl
	}
}

// rotateLeft performs a left rotation around node x:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// nolint:varnamelen // Standard red-black tree variable names
func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right
	assert.True(y != nil, "corrupt tree: rotateLeft at %v without a right child", x)

	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent
	t.replaceChild(x.parent, x, y)

	y.left = x
	x.parent = y

	t.recordRotation()
}

// rotateRight performs a right rotation around node y:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// nolint:dupword,varnamelen // ASCII art; standard RB tree variable names
func (t *Tree[T]) rotateRight(y *node[T]) {
	x := y.left
	assert.True(x != nil, "corrupt tree: rotateRight at %v without a left child", y)

	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent
	t.replaceChild(y.parent, y, x)

	x.right = y
	y.parent = x

	t.recordRotation()
}
