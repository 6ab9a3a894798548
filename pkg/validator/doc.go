// Package validator provides a small rule-based validation engine: callers
// build Rule values that pair a boolean Check function with error metadata,
// and evaluate them with Apply, which aggregates every failure into a
// ValidationErrors slice satisfying the error interface.
//
// # Architecture
//
// Rules are plain values with no hidden state, so the package is stateless
// and goroutine-safe. Apply never short-circuits: all violated rules are
// reported together, giving callers full diagnostic detail from a single
// error return.
//
// Core building blocks:
//   - Rule             – Check func plus a ValidationError describing failure
//   - ValidationError  – a single failure; wraps a caller-supplied cause
//   - ValidationErrors – slice type implementing error and Unwrap() []error
//
// Because ValidationErrors unwraps into its entries and each entry unwraps
// into its cause, errors.Is works end to end:
//
//	err := validator.Apply(
//	    validator.NotNilSlice("payload", items, ErrNilPayload),
//	    validator.NonZeroLen("payload", items, ErrZeroLength),
//	)
//	if errors.Is(err, ErrNilPayload) {
//	    // the payload was absent
//	}
//
// The rule set here covers presence and emptiness only; richer rule families
// belong in the packages that need them.
package validator
