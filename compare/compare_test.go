package compare_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-ordered/compare"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type testNumber int

func (n testNumber) Equals(other testNumber) bool {
	return int(n) == int(other)
}

type person struct {
	Name string
	Age  int
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, compare.Equals[testNumber](testNumber(3), testNumber(3)))
	assert.False(t, compare.Equals[testNumber](testNumber(3), testNumber(4)))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	t.Run("ints", func(t *testing.T) {
		t.Parallel()

		c := compare.Natural[int]()
		assert.Negative(t, c(1, 2))
		assert.Positive(t, c(2, 1))
		assert.Zero(t, c(7, 7))
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		c := compare.Natural[string]()
		assert.Negative(t, c("a", "b"))
		assert.Zero(t, c("same", "same"))
	})
}

func TestComparator_Reverse(t *testing.T) {
	t.Parallel()

	c := compare.Natural[int]().Reverse()
	assert.Positive(t, c(1, 2))
	assert.Negative(t, c(2, 1))
	assert.Zero(t, c(5, 5))

	values := []int{3, 1, 2}
	slices.SortFunc(values, c)
	assert.Equal(t, []int{3, 2, 1}, values)
}

func TestComparator_Equal(t *testing.T) {
	t.Parallel()

	c := compare.Natural[int]()
	assert.True(t, c.Equal(4, 4))
	assert.False(t, c.Equal(4, 5))
}

func TestBy(t *testing.T) {
	t.Parallel()

	byName := compare.By(func(p person) string { return p.Name }, compare.Natural[string]())

	assert.Zero(t, byName(person{"ann", 30}, person{"ann", 40}), "only the key takes part")
	assert.Negative(t, byName(person{"ann", 99}, person{"bob", 1}))
}

func TestComparator_Then(t *testing.T) {
	t.Parallel()

	byAge := compare.By(func(p person) int { return p.Age }, compare.Natural[int]())
	byName := compare.By(func(p person) string { return p.Name }, compare.Natural[string]())
	c := byAge.Then(byName)

	people := []person{{"carl", 30}, {"ann", 30}, {"bob", 20}}
	slices.SortFunc(people, c)

	assert.Equal(t, []person{{"bob", 20}, {"ann", 30}, {"carl", 30}}, people)
}

func TestNaturalStrings(t *testing.T) {
	t.Parallel()

	c := compare.NaturalStrings()

	assert.Negative(t, c("file2", "file10"))
	assert.Positive(t, c("file10", "file2"))
	assert.Zero(t, c("file7", "file7"))
	assert.Zero(t, c("", ""))
	assert.Equal(t, -c("b", "a10"), c("a10", "b"))

	names := []string{"img12", "img10", "img2", "img1"}
	slices.SortFunc(names, c)
	assert.Equal(t, []string{"img1", "img2", "img10", "img12"}, names)
}

func TestCollated(t *testing.T) {
	t.Parallel()

	words := []string{"cherry", "f", "banana", "é", "Apple", "e"}
	slices.SortFunc(words, compare.Collated(language.English))

	assert.Equal(t, []string{"Apple", "banana", "cherry", "e", "é", "f"}, words)
}
