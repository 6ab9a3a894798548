package nonempty

// BinaryOp combines two elements into one. Arithmetic-like and
// comparison-like operators are expressed as explicit functions; there is no
// operator interception, every combination goes through a validated adapter.
type BinaryOp[T any] func(a, b T) T

// Combine applies op elementwise over both payloads, recycling the shorter
// payload to the longer length, and revalidates the result. Neither operand
// is mutated; on failure no instance is produced.
func (x Vector[T]) Combine(op BinaryOp[T], y Vector[T]) (Vector[T], error) {
	return New(zip(op, x.items, y.items))
}

// CombineValues applies op against a raw right-hand payload. A nil slice is
// the absent sentinel: the candidate is then absent too, and validation
// fails with ErrNilPayload.
func (x Vector[T]) CombineValues(op BinaryOp[T], values []T) (Vector[T], error) {
	return New(zip(op, x.items, values))
}

// ValuesCombine is the mirrored shape: raw left-hand payload against a
// wrapped right-hand one.
func ValuesCombine[T any](op BinaryOp[T], values []T, y Vector[T]) (Vector[T], error) {
	return New(zip(op, values, y.items))
}

// Combine applies op elementwise over both text payloads, recycling the
// shorter one, and revalidates the result.
func (x Text) Combine(op BinaryOp[string], y Text) (Text, error) {
	return NewText(zip(op, x.items, y.items))
}

// CombineStrings applies op against a raw right-hand payload; nil is the
// absent sentinel and fails with ErrNilPayload.
func (x Text) CombineStrings(op BinaryOp[string], values []string) (Text, error) {
	return NewText(zip(op, x.items, values))
}

// StringsCombine is the mirrored shape for text: raw left-hand payload
// against a wrapped right-hand one.
func StringsCombine(op BinaryOp[string], values []string, y Text) (Text, error) {
	return NewText(zip(op, values, y.items))
}

// zip pairs up two payloads under op. Absence and emptiness propagate into
// the candidate so the constructor reports them: a nil side yields a nil
// candidate, a zero-length side a zero-length one.
func zip[T any](op BinaryOp[T], a, b []T) []T {
	if a == nil || b == nil {
		return nil
	}
	if len(a) == 0 || len(b) == 0 {
		return []T{}
	}

	n := max(len(a), len(b))
	out := make([]T, n)
	for i := range out {
		out[i] = op(a[i%len(a)], b[i%len(b)])
	}
	return out
}
