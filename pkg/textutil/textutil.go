package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Trim strips leading and trailing Unicode whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CharCount reports the number of characters in s after NFC normalization,
// so composed and decomposed forms of the same character count once.
func CharCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// IsBlank reports whether s trims to zero characters.
func IsBlank(s string) bool {
	return CharCount(Trim(s)) == 0
}

// SubstringRunes returns the rune-safe substring covering positions
// [start, stop) of s. Bounds are clamped to the string's rune length;
// an inverted or fully out-of-range window yields "".
func SubstringRunes(s string, start, stop int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if stop > len(runes) {
		stop = len(runes)
	}
	if start >= stop {
		return ""
	}
	return string(runes[start:stop])
}
