package optional_test

import (
	"strconv"
	"testing"

	"github.com/amp-labs/amp-ordered/optional"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	v := optional.Some(42)

	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, got)
	assert.True(t, v.NonEmpty())
	assert.False(t, v.Empty())
	assert.Equal(t, 42, v.GetOrPanic())
	assert.Equal(t, 42, v.GetOrElse(7))
	assert.Equal(t, "Some(42)", v.String())
}

func TestNone(t *testing.T) {
	t.Parallel()

	v := optional.None[string]()

	got, ok := v.Get()
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.True(t, v.Empty())
	assert.Equal(t, "fallback", v.GetOrElse("fallback"))
	assert.Equal(t, "None", v.String())
	assert.Panics(t, func() { v.GetOrPanic() })
}

func TestValue_All(t *testing.T) {
	t.Parallel()

	var seen []int

	for x := range optional.Some(3).All() {
		seen = append(seen, x)
	}

	for x := range optional.None[int]().All() {
		seen = append(seen, x)
	}

	assert.Equal(t, []int{3}, seen)
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, optional.Some("12"), optional.Map(optional.Some(12), strconv.Itoa))
	assert.True(t, optional.Map(optional.None[int](), strconv.Itoa).Empty())
}
