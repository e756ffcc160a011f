package rbtree_test

import (
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-ordered/rbtree"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entry gives each inserted value a unique sequence number so the oracle
// b-tree, which has set semantics, can model a multiset.
type entry struct {
	value int
	seq   int
}

func entryLess(a, b entry) bool {
	if a.value != b.value {
		return a.value < b.value
	}

	return a.seq < b.seq
}

type multisetOracle struct {
	tree *btree.BTreeG[entry]
	seq  int
}

func newOracle() *multisetOracle {
	return &multisetOracle{tree: btree.NewG(16, entryLess)}
}

func (o *multisetOracle) add(v int) {
	o.seq++
	o.tree.ReplaceOrInsert(entry{value: v, seq: o.seq})
}

// removeOne drops one occurrence of v, if any.
func (o *multisetOracle) removeOne(v int) bool {
	var (
		found entry
		ok    bool
	)

	o.tree.AscendGreaterOrEqual(entry{value: v}, func(e entry) bool {
		found, ok = e, e.value == v

		return false
	})

	if ok {
		o.tree.Delete(found)
	}

	return ok
}

func (o *multisetOracle) contains(v int) bool {
	return o.count(v) > 0
}

func (o *multisetOracle) count(v int) int {
	n := 0

	o.tree.AscendRange(entry{value: v}, entry{value: v + 1}, func(entry) bool {
		n++

		return true
	})

	return n
}

func (o *multisetOracle) values() []int {
	out := make([]int, 0, o.tree.Len())

	o.tree.Ascend(func(e entry) bool {
		out = append(out, e.value)

		return true
	})

	return out
}

func (o *multisetOracle) popMin() (int, bool) {
	e, ok := o.tree.DeleteMin()

	return e.value, ok
}

func TestTree_MatchesOracle(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{1, 7, 42, 1999} {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
		tree := rbtree.NewOrdered[int]()
		oracle := newOracle()

		for step := range 5000 {
			v := rng.IntN(64)

			switch op := rng.IntN(10); {
			case op < 4:
				require.True(t, tree.Insert(v, rbtree.AlwaysAdd))
				oracle.add(v)
			case op < 5:
				added := tree.Insert(v, rbtree.AddIfMissing)
				require.Equal(t, !oracle.contains(v), added, "seed %d step %d", seed, step)

				if added {
					oracle.add(v)
				}
			case op < 8:
				require.Equal(t, oracle.removeOne(v), tree.Remove(v), "seed %d step %d", seed, step)
			case op < 9:
				want, wantOK := oracle.popMin()
				got, gotOK := tree.PopMin().Get()
				require.Equal(t, wantOK, gotOK)
				require.Equal(t, want, got)
			default:
				require.Equal(t, oracle.count(v), tree.Occurrences(v), "seed %d step %d", seed, step)
			}

			require.Equal(t, oracle.tree.Len(), tree.Len())

			if step%100 == 0 {
				require.NoError(t, tree.Validate(), "seed %d step %d", seed, step)
			}
		}

		require.NoError(t, tree.Validate())
		assert.Equal(t, oracle.values(), tree.Slice(), "seed %d", seed)
	}
}
