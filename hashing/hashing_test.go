package hashing_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-ordered/hashing"
	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("equal sequences hash equal", func(t *testing.T) {
		t.Parallel()

		a := []int{1, 2, 3}
		assert.Equal(t, hashing.Slice(a), hashing.Sequence(slices.Values(a)))
	})

	t.Run("order matters", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, hashing.Slice([]int{1, 2, 3}), hashing.Slice([]int{3, 2, 1}))
	})

	t.Run("element boundaries matter", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, hashing.Slice([]string{"1", "23"}), hashing.Slice([]string{"12", "3"}))
	})

	t.Run("empty is stable", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, hashing.Slice[int](nil), hashing.Slice([]int{}))
	})
}
