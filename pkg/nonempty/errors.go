package nonempty

import "errors"

// Structural invariant violations reported by the constructors and adapters.
// All are permanent conditions of the candidate payload, never transient.
var (
	// ErrNilPayload is reported when the candidate payload is absent (nil).
	ErrNilPayload = errors.New("payload is absent")

	// ErrZeroLength is reported when the candidate payload holds no elements.
	ErrZeroLength = errors.New("payload holds no elements")

	// ErrAllBlank is reported when every element of a text payload trims to
	// zero characters.
	ErrAllBlank = errors.New("every text element is blank")

	// ErrIndexOutOfRange is reported by the indexed adapters when a position
	// falls outside the payload bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)
