package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: %v", ErrDuplicateKey, "a")

	require.ErrorIs(t, wrapped, ErrDuplicateKey)
	assert.NotErrorIs(t, wrapped, ErrKeyNotFound)
	assert.Equal(t, "duplicate key: a", wrapped.Error())
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrCorruptTree)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		assert.NoError(t, c.GetError())
	})

	t.Run("single error returned as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrKeyNotFound)

		assert.Same(t, ErrKeyNotFound, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: red root", ErrCorruptTree))
		c.Add(fmt.Errorf("%w: bad count", ErrCorruptTree))

		err := c.GetError()
		require.ErrorIs(t, err, ErrCorruptTree)
		assert.Contains(t, err.Error(), "red root")
		assert.Contains(t, err.Error(), "bad count")
	})
}
