package rbtree

import "fmt"

// color represents the color of a red-black tree node.
type color bool

// String returns a human-readable representation of the node color.
func (c color) String() string {
	switch c {
	case true:
		return "Black"
	default:
		return "Red"
	}
}

const (
	// black and red are the two node colors in a red-black tree.
	black, red color = true, false
)

// node holds one element. The tree owns nodes through the child links;
// parent is a back link and is nil only at the root.
type node[T any] struct {
	elem   T
	color  color
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// String returns a string representation of the node showing its element and color.
func (n *node[T]) String() string {
	return fmt.Sprintf("(%#v : %s)", n.elem, n.color)
}

// isRed returns true if the node is red, false if the node is black or nil.
func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}

// minNode returns the leftmost node of n's subtree.
// n must not be nil.
func (n *node[T]) minNode() *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// maxNode returns the rightmost node of n's subtree.
// n must not be nil.
func (n *node[T]) maxNode() *node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// next returns the in-order successor of n, or nil if n is the last node.
func (n *node[T]) next() *node[T] {
	if n.right != nil {
		return n.right.minNode()
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}

	return n.parent
}

// prev returns the in-order predecessor of n, or nil if n is the first node.
func (n *node[T]) prev() *node[T] {
	if n.left != nil {
		return n.left.maxNode()
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}

	return n.parent
}
