package nonempty

import (
	"fmt"
	"slices"

	"github.com/validkit/validkit/pkg/validator"
)

// Vector is a non-empty slice of T. Instances are produced only by New and
// by the adapter methods, all of which revalidate before returning, so every
// reachable Vector satisfies the invariant. The payload is never shared:
// constructors and accessors copy, so no caller can empty a Vector from the
// outside.
//
// The zero value is invalid; obtain instances through New.
type Vector[T any] struct {
	items []T
}

// New validates items and wraps them. A nil slice is the absent sentinel and
// fails with ErrNilPayload; a zero-length slice fails with ErrZeroLength.
// All violations are collected into one validator.ValidationErrors value.
func New[T any](items []T) (Vector[T], error) {
	if err := validator.Apply(
		validator.NotNilSlice("payload", items, ErrNilPayload),
		validator.NonZeroLen("payload", items, ErrZeroLength),
	); err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{items: slices.Clone(items)}, nil
}

// Items returns a copy of the wrapped payload.
func (x Vector[T]) Items() []T {
	return slices.Clone(x.items)
}

// At returns the element at position i.
func (x Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(x.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(x.items))
	}
	return x.items[i], nil
}

// Len reports the number of elements, always at least 1.
func (x Vector[T]) Len() int {
	return len(x.items)
}

// String renders the payload the way fmt renders the underlying slice.
func (x Vector[T]) String() string {
	return fmt.Sprintf("%v", x.items)
}

func (x Vector[T]) nonEmpty() {}
