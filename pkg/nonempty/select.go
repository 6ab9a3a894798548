package nonempty

import "fmt"

// Select returns a new Vector holding the elements at the given positions,
// in the given order. Positions are 0-based and may repeat. An empty
// selection produces a zero-length candidate and fails with ErrZeroLength.
func (x Vector[T]) Select(indexes ...int) (Vector[T], error) {
	picked, err := pick(x.items, indexes)
	if err != nil {
		return Vector[T]{}, err
	}
	return New(picked)
}

// SelectFunc keeps the elements matching pred, preserving order. A predicate
// matching nothing fails with ErrZeroLength.
func (x Vector[T]) SelectFunc(pred func(T) bool) (Vector[T], error) {
	return New(filter(x.items, pred))
}

// Select returns a new Text holding the elements at the given positions; an
// empty selection fails with ErrZeroLength, a selection of only blank
// elements with ErrAllBlank.
func (x Text) Select(indexes ...int) (Text, error) {
	picked, err := pick(x.items, indexes)
	if err != nil {
		return Text{}, err
	}
	return NewText(picked)
}

// SelectFunc keeps the text elements matching pred, preserving order.
func (x Text) SelectFunc(pred func(string) bool) (Text, error) {
	return NewText(filter(x.items, pred))
}

// SelectGrid is the two-dimensional read form for row/column payloads: it
// keeps the given rows and, within each kept row, the given columns. Either
// selection being empty empties the result and fails with ErrZeroLength.
func SelectGrid[T any](x Vector[[]T], rows, cols []int) (Vector[[]T], error) {
	if len(rows) == 0 || len(cols) == 0 {
		return New([][]T{})
	}

	picked, err := pick(x.items, rows)
	if err != nil {
		return Vector[[]T]{}, err
	}

	out := make([][]T, len(picked))
	for i, row := range picked {
		sub, err := pick(row, cols)
		if err != nil {
			return Vector[[]T]{}, err
		}
		out[i] = sub
	}
	return New(out)
}

func pick[T any](items []T, indexes []int) ([]T, error) {
	out := make([]T, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(items) {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(items))
		}
		out = append(out, items[i])
	}
	return out, nil
}

func filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
