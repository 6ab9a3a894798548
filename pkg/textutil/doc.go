// Package textutil provides the small set of text primitives the rest of the
// kit builds on: Unicode-aware trimming, character counting, blank detection,
// and rune-safe substring extraction.
//
// Character counting normalizes to NFC first (via golang.org/x/text), so a
// composed "é" and its decomposed "e"+combining-accent form count as the same
// single character. All helpers are pure functions over their inputs; the
// package holds no state and is safe for concurrent use.
package textutil
