package validator

import "github.com/validkit/validkit/pkg/textutil"

// NotNilSlice validates that a slice payload is present; a nil slice is the
// absent sentinel. The cause is attached to the failure so callers can detect
// it with errors.Is.
func NotNilSlice[T any](field string, value []T, cause error) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "payload is absent",
			Err:     cause,
		},
	}
}

// NonZeroLen validates that a slice holds at least one element.
func NonZeroLen[T any](field string, value []T, cause error) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "must hold at least one element",
			Err:     cause,
		},
	}
}

// AnyNonBlank validates that at least one string in the slice survives
// trimming with a non-zero character count. An empty slice has no such
// string and fails too.
func AnyNonBlank(field string, value []string, cause error) Rule {
	return Rule{
		Check: func() bool {
			for _, s := range value {
				if !textutil.IsBlank(s) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: "every element is blank",
			Err:     cause,
		},
	}
}
