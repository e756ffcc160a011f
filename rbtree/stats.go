package rbtree

import (
	"go.uber.org/atomic"
)

// Stats is a snapshot of a tree's lifetime activity.
type Stats struct {
	Inserts      int64 // new nodes linked
	Overwrites   int64 // in-place replacements by OverwriteIfExisting
	Removals     int64 // nodes unlinked, including PopMin
	Rotations    int64
	InsertFixups int64 // rebalancing steps after inserts
	DeleteFixups int64 // rebalancing steps after removals
}

// counters are atomic so Stats may be read from another goroutine (a metrics
// scrape, a progress reporter) while the owner keeps mutating the tree.
type counters struct {
	inserts      *atomic.Int64
	overwrites   *atomic.Int64
	removals     *atomic.Int64
	rotations    *atomic.Int64
	insertFixups *atomic.Int64
	deleteFixups *atomic.Int64
}

func newCounters() *counters {
	return &counters{
		inserts:      atomic.NewInt64(0),
		overwrites:   atomic.NewInt64(0),
		removals:     atomic.NewInt64(0),
		rotations:    atomic.NewInt64(0),
		insertFixups: atomic.NewInt64(0),
		deleteFixups: atomic.NewInt64(0),
	}
}

// Stats returns the activity counters accumulated since the tree was created.
// Clear does not reset them.
func (t *Tree[T]) Stats() Stats {
	return Stats{
		Inserts:      t.stats.inserts.Load(),
		Overwrites:   t.stats.overwrites.Load(),
		Removals:     t.stats.removals.Load(),
		Rotations:    t.stats.rotations.Load(),
		InsertFixups: t.stats.insertFixups.Load(),
		DeleteFixups: t.stats.deleteFixups.Load(),
	}
}

func (t *Tree[T]) recordInsert() {
	t.stats.inserts.Inc()
	t.metrics.insert(t.count)
}

func (t *Tree[T]) recordOverwrite() {
	t.stats.overwrites.Inc()
	t.metrics.overwrite()
}

func (t *Tree[T]) recordRemoval() {
	t.stats.removals.Inc()
	t.metrics.removal(t.count)
}

func (t *Tree[T]) recordRotation() {
	t.stats.rotations.Inc()
	t.metrics.rotation()
}
