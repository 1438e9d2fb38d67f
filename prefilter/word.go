// Package prefilter provides fast candidate filtering for regex search.
//
// This file implements WordPrefilter, a specialized prefilter for patterns
// that are provably led by a word character (surface syntax `\w`), used when
// literal extraction found no fixed requirement but literal.LeadsWithWord
// still proves every match starts with one.

package prefilter

import "github.com/coregx/pergrex/simd"

// WordPrefilter implements the Prefilter interface for patterns that must
// start with a word character (surface syntax `\w`), letting the simulator
// skip straight to the next ASCII byte in [A-Za-z0-9_] instead of stepping
// through every byte. Non-ASCII letters and digits are not found by this
// scan. Effective for patterns like `\w\w` where no literal byte
// requirement exists but every candidate start is still constrained.
//
// This prefilter is NOT complete - finding a word character is only a
// candidate position. The full regex must be verified at that position.
type WordPrefilter struct{}

// NewWordPrefilter creates a prefilter for patterns that must start with a
// word character. It uses simd.MemchrWord internally.
func NewWordPrefilter() *WordPrefilter {
	return &WordPrefilter{}
}

// Find returns the index of the first word character at or after 'start'.
// Returns -1 if none is found in the remaining haystack.
func (p *WordPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	pos := simd.MemchrWord(haystack[start:])
	if pos < 0 {
		return -1
	}
	return start + pos
}

// IsComplete returns false: finding a word character only narrows the
// search space, it never proves a match on its own.
func (p *WordPrefilter) IsComplete() bool {
	return false
}

// LiteralLen returns 0 because WordPrefilter doesn't match fixed-length literals.
func (p *WordPrefilter) LiteralLen() int {
	return 0
}

// HeapBytes returns 0: WordPrefilter is stateless.
func (p *WordPrefilter) HeapBytes() int {
	return 0
}
