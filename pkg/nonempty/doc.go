// Package nonempty provides wrapper types that are guaranteed to hold at
// least one element, pushing emptiness checks from use time to construction
// and mutation time.
//
// Two wrappers cover the payload shapes:
//   - Vector[T] – a non-empty slice of any element type
//   - Text      – a non-empty slice of strings where at least one element
//     must be non-blank after trimming
//
// # Invariant preservation
//
// Smart constructors (New, NewText) are the only way to obtain an instance;
// the struct fields are unexported and every accessor returns a copy, so the
// invariant cannot be broken from outside the package. Every operation that
// would change a payload (Combine, Select, Assign, Concat, Substring)
// follows the same sequence: compute a candidate payload from a copy, run it
// back through the constructor, and either return a fresh valid instance or
// an error. A failed operation commits nothing; the receiver stays valid and
// untouched. No partially-valid instance is ever observable.
//
// # Error Handling
//
// Failures are validator.ValidationErrors values whose entries wrap the
// package sentinels ErrNilPayload, ErrZeroLength and ErrAllBlank, so every
// simultaneous violation is reported in one error and callers can test with
// errors.Is:
//
//	v, err := nonempty.New([]int{2, 4, 6})
//	// ...
//	_, err = v.Select() // empty selection
//	if errors.Is(err, nonempty.ErrZeroLength) {
//	    // rejected; v still holds [2 4 6]
//	}
//
// The absent payload ("null") is represented the Go-native way: a nil slice.
// Combining a wrapped value with a nil slice therefore fails with
// ErrNilPayload rather than producing an absent result.
//
// # Dispatch
//
// The sealed Container interface tags every wrapper in this package; holding
// a Container proves the non-empty invariant, letting downstream code select
// a fast path that skips its own emptiness checks.
//
// All values are immutable after construction, so instances may be shared
// between goroutines freely.
package nonempty
