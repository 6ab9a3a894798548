package nonempty

import (
	"fmt"
	"slices"
)

// Assign writes value at position i on a copy of the payload and revalidates
// the whole candidate. On failure the receiver is untouched and no instance
// is produced; the write never partially commits.
func (x Vector[T]) Assign(i int, value T) (Vector[T], error) {
	out, err := put(x.items, i, value)
	if err != nil {
		return Vector[T]{}, err
	}
	return New(out)
}

// AssignAll writes value at every position.
func (x Vector[T]) AssignAll(value T) (Vector[T], error) {
	return New(fill(len(x.items), value))
}

// Assign writes value at position i on a copy of the payload. Writing a
// blank over the only non-blank element fails with ErrAllBlank and leaves
// the receiver unchanged.
func (x Text) Assign(i int, value string) (Text, error) {
	out, err := put(x.items, i, value)
	if err != nil {
		return Text{}, err
	}
	return NewText(out)
}

// AssignAll writes value at every position; a blank value fails with
// ErrAllBlank.
func (x Text) AssignAll(value string) (Text, error) {
	return NewText(fill(len(x.items), value))
}

func put[T any](items []T, i int, value T) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(items))
	}
	out := slices.Clone(items)
	out[i] = value
	return out, nil
}

func fill[T any](n int, value T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}
