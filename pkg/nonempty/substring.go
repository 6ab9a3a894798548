package nonempty

import "github.com/validkit/validkit/pkg/textutil"

// Substring extracts the rune range [start, stop) from every element and
// revalidates the result. Bounds are clamped per element, so a window that
// lands outside an element yields "" for it; a window that blanks every
// element fails with ErrAllBlank and leaves the receiver unchanged.
func (x Text) Substring(start, stop int) (Text, error) {
	out := make([]string, len(x.items))
	for i, s := range x.items {
		out[i] = textutil.SubstringRunes(s, start, stop)
	}
	return NewText(out)
}
