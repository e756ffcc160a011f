// Package tuple provides small immutable product types.
package tuple

// NewTuple2 pairs first and second.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// WithSecond returns a copy of t whose second element is replaced.
func (t Tuple2[A, B]) WithSecond(second B) Tuple2[A, B] {
	t.second = second

	return t
}
