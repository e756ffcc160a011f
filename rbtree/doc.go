// Package rbtree implements an ordered multiset as an intrusive red-black tree.
//
// Elements are ordered by a caller-supplied compare.Comparator and may repeat:
// the tree keeps one node per inserted element, and the insert mode decides
// what happens when an equal element is already present.
//
// Red-black trees enforce the following properties to maintain balance:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children (no two consecutive red nodes on any path)
//  5. Every path from a node to a descendant leaf contains the same number of black nodes
//
// These bound the height of a tree holding n elements by 2*log2(n+1), so
// insertion, removal and lookup are O(log n).
//
// A Tree is not safe for concurrent use. It has a single owner at a time;
// callers sharing a tree across goroutines must guard it with their own lock.
// Mutating a tree while ranging over one of its iterators is not supported.
//
// The comparator is trusted: if it panics the panic propagates unchanged and
// the tree must be discarded.
package rbtree
