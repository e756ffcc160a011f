//go:build !assertions_disabled

package assert

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("passes on true", func(t *testing.T) {
		t.Parallel()

		tassert.NotPanics(t, func() { True(true) })
	})

	t.Run("panics without args", func(t *testing.T) {
		t.Parallel()

		tassert.PanicsWithValue(t, "assertion failed", func() { True(false) })
	})

	t.Run("formats message", func(t *testing.T) {
		t.Parallel()

		tassert.PanicsWithValue(t, "node 5 has no right child", func() {
			True(false, "node %d has no right child", 5)
		})
	})

	t.Run("non-string first arg", func(t *testing.T) {
		t.Parallel()

		tassert.PanicsWithValue(t, "assertion failed: [42]", func() { True(false, 42) })
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	tassert.NotPanics(t, func() { False(false) })
	tassert.Panics(t, func() { False(true) })
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	tassert.NotPanics(t, func() { NotNil(1) })
	tassert.Panics(t, func() { NotNil(nil) })
}
