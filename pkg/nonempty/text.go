package nonempty

import (
	"fmt"
	"slices"

	"github.com/validkit/validkit/pkg/validator"
)

// Text is a non-empty vector of strings with one rule beyond Vector's: at
// least one element must survive trimming with a non-zero character count.
// A Text full of "" or whitespace-only strings is as unusable as an empty
// one, so it is rejected the same way.
//
// The zero value is invalid; obtain instances through NewText.
type Text struct {
	items []string
}

// NewText validates items and wraps them. On top of the Vector rules it
// fails with ErrAllBlank when no element has a non-blank character; multiple
// violations are all reported together.
func NewText(items []string) (Text, error) {
	if err := validator.Apply(
		validator.NotNilSlice("payload", items, ErrNilPayload),
		validator.NonZeroLen("payload", items, ErrZeroLength),
		validator.AnyNonBlank("payload", items, ErrAllBlank),
	); err != nil {
		return Text{}, err
	}
	return Text{items: slices.Clone(items)}, nil
}

// Strings returns a copy of the wrapped payload.
func (x Text) Strings() []string {
	return slices.Clone(x.items)
}

// At returns the element at position i.
func (x Text) At(i int) (string, error) {
	if i < 0 || i >= len(x.items) {
		return "", fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(x.items))
	}
	return x.items[i], nil
}

// Len reports the number of elements, always at least 1.
func (x Text) Len() int {
	return len(x.items)
}

// String renders the payload the way fmt renders the underlying slice.
func (x Text) String() string {
	return fmt.Sprintf("%v", x.items)
}

func (x Text) nonEmpty() {}
