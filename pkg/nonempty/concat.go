package nonempty

import "slices"

// Concat appends the payloads of others after x's, preserving argument and
// element order. Every input is already non-empty so the result cannot be
// empty, but it is revalidated anyway in case the input constraints ever
// relax.
func (x Vector[T]) Concat(others ...Vector[T]) (Vector[T], error) {
	out := slices.Clone(x.items)
	for _, y := range others {
		out = append(out, y.items...)
	}
	return New(out)
}

// Concat appends the payloads of others after x's, preserving order, and
// revalidates the result.
func (x Text) Concat(others ...Text) (Text, error) {
	out := slices.Clone(x.items)
	for _, y := range others {
		out = append(out, y.items...)
	}
	return NewText(out)
}
