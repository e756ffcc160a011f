package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple2(t *testing.T) {
	t.Parallel()

	tup := NewTuple2("key", 10)
	assert.Equal(t, "key", tup.First())
	assert.Equal(t, 10, tup.Second())

	changed := tup.WithSecond(20)
	assert.Equal(t, 20, changed.Second())
	assert.Equal(t, "key", changed.First())
	assert.Equal(t, 10, tup.Second(), "original is untouched")
}
