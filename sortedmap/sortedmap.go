// Package sortedmap provides a map with unique keys kept in ascending key
// order, backed by an rbtree.Tree of key/value pairs.
//
// The pairs are ordered by a comparator that only looks at the key, so the
// tree's OverwriteIfExisting and AddIfMissing modes give Set and Add their
// unique-key semantics.
//
// Like the tree beneath it, a Map is not safe for concurrent use.
package sortedmap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/amp-labs/amp-ordered/compare"
	"github.com/amp-labs/amp-ordered/errors"
	"github.com/amp-labs/amp-ordered/optional"
	"github.com/amp-labs/amp-ordered/rbtree"
	"github.com/amp-labs/amp-ordered/tuple"
	"github.com/amp-labs/amp-ordered/zero"
)

// Entry is a stored key/value pair.
type Entry[K, V any] = tuple.Tuple2[K, V]

// Map is a sorted map from K to V.
type Map[K, V any] struct {
	tree *rbtree.Tree[Entry[K, V]]
}

// New creates an empty map ordered by keyOrder.
// It returns ErrNilComparator if keyOrder is nil.
func New[K, V any](keyOrder compare.Comparator[K], opts ...rbtree.Option) (*Map[K, V], error) {
	if keyOrder == nil {
		return nil, errors.ErrNilComparator
	}

	tree, err := rbtree.New(compare.By(tuple.Tuple2[K, V].First, keyOrder), opts...)
	if err != nil {
		return nil, err
	}

	return &Map[K, V]{tree: tree}, nil
}

// NewOrdered creates an empty map using the standard ordering of K.
func NewOrdered[K cmp.Ordered, V any](opts ...rbtree.Option) *Map[K, V] {
	m, _ := New[K, V](compare.Natural[K](), opts...)

	return m
}

// NewFrom creates a map ordered by keyOrder holding entries. When a key
// repeats, the last value wins.
func NewFrom[K, V any](
	keyOrder compare.Comparator[K], entries iter.Seq2[K, V], opts ...rbtree.Option,
) (*Map[K, V], error) {
	m, err := New[K, V](keyOrder, opts...)
	if err != nil {
		return nil, err
	}

	for k, v := range entries {
		m.Set(k, v)
	}

	return m, nil
}

func probe[K, V any](key K) Entry[K, V] {
	return tuple.NewTuple2(key, zero.Value[V]())
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	m.tree.Insert(tuple.NewTuple2(key, value), rbtree.OverwriteIfExisting)
}

// Add stores value under key. It returns ErrDuplicateKey and leaves the map
// unchanged if key is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	if !m.tree.Insert(tuple.NewTuple2(key, value), rbtree.AddIfMissing) {
		return fmt.Errorf("%w: %v", errors.ErrDuplicateKey, key)
	}

	return nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	entry, ok := m.tree.Find(probe[K, V](key)).Get()
	if !ok {
		return zero.Value[V](), fmt.Errorf("%w: %v", errors.ErrKeyNotFound, key)
	}

	return entry.Second(), nil
}

// TryGet returns the value stored under key, or None.
func (m *Map[K, V]) TryGet(key K) optional.Value[V] {
	return optional.Map(m.tree.Find(probe[K, V](key)), tuple.Tuple2[K, V].Second)
}

// GetOrElse returns the value stored under key, or defaultValue.
func (m *Map[K, V]) GetOrElse(key K, defaultValue V) V {
	return m.TryGet(key).GetOrElse(defaultValue)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(probe[K, V](key))
}

// Remove deletes key and reports whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	return m.tree.Remove(probe[K, V](key))
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Keys returns the keys in ascending order. The slice is a snapshot.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())

	for entry := range m.tree.All() {
		keys = append(keys, entry.First())
	}

	return keys
}

// Values returns the values in ascending key order. The slice is a snapshot.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())

	for entry := range m.tree.All() {
		values = append(values, entry.Second())
	}

	return values
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for entry := range m.tree.All() {
			if !yield(entry.First(), entry.Second()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for entry := range m.tree.Backward() {
			if !yield(entry.First(), entry.Second()) {
				return
			}
		}
	}
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() optional.Value[Entry[K, V]] {
	return m.tree.Min()
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() optional.Value[Entry[K, V]] {
	return m.tree.Max()
}

// PopMin removes and returns the entry with the smallest key.
func (m *Map[K, V]) PopMin() optional.Value[Entry[K, V]] {
	return m.tree.PopMin()
}

// Validate checks the underlying tree's invariants; see rbtree.Tree.Validate.
func (m *Map[K, V]) Validate() error {
	return m.tree.Validate()
}

// Stats returns the underlying tree's activity counters.
func (m *Map[K, V]) Stats() rbtree.Stats {
	return m.tree.Stats()
}
