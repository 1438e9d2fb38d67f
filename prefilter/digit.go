// Package prefilter provides fast candidate filtering for regex search.
//
// This file implements DigitPrefilter, a specialized prefilter for patterns
// that must start with a digit (surface syntax `\d`); it scans for ASCII
// digits [0-9]. Used for digit-lead patterns where literal extraction finds
// no required bytes.

package prefilter

import "github.com/coregx/pergrex/simd"

// DigitPrefilter implements the Prefilter interface for patterns that must
// start with an ASCII digit (surface syntax `\d`), letting the simulator
// skip straight to the next digit instead of stepping through every byte.
// Non-ASCII digits are not found by this scan. This is particularly
// effective for:
//   - Digit runs: `\d\d`
//   - Digit-led words: `\d\w*`
//
// This prefilter is NOT complete - finding a digit is only a candidate
// position. The full regex must be verified at that position.
//
// Example usage (internal):
//
//	pf := NewDigitPrefilter()
//	pos := pf.Find(haystack, 0)
//	for pos != -1 {
//	    if regexMatchesAt(haystack, pos) {
//	        return pos
//	    }
//	    pos = pf.Find(haystack, pos+1)
//	}
type DigitPrefilter struct{}

// NewDigitPrefilter creates a prefilter for patterns that must start with digits.
//
// This prefilter uses simd.MemchrDigitAt internally for fast digit scanning.
// It is designed for patterns where all union branches must begin with
// `\d`, enabling efficient skip-ahead through regions without ASCII digits.
//
// Example patterns that benefit:
//   - `\d\d`
//   - `\d\w*`
func NewDigitPrefilter() *DigitPrefilter {
	return &DigitPrefilter{}
}

// Find returns the index of the first digit at or after 'start'.
// Returns -1 if no digit is found in the remaining haystack.
//
// Parameters:
//   - haystack: the byte slice to search
//   - start: the starting position (inclusive)
//
// Returns:
//   - index >= start if a digit candidate is found
//   - -1 if no digit exists at or after start
func (p *DigitPrefilter) Find(haystack []byte, start int) int {
	return simd.MemchrDigitAt(haystack, start)
}

// IsComplete returns false because finding a digit is only a candidate position.
// The full regex must be verified at that position to confirm a match.
//
// Unlike literal prefilters (Memchr, Memmem) which can sometimes guarantee
// a match, digit prefiltering only narrows the search space - the actual
// pattern may still fail to match at the digit position.
func (p *DigitPrefilter) IsComplete() bool {
	return false
}

// LiteralLen returns 0 because DigitPrefilter doesn't match fixed-length literals.
//
// The prefilter finds digit characters, but the actual match length depends
// on the full regex pattern being verified.
func (p *DigitPrefilter) LiteralLen() int {
	return 0
}

// HeapBytes returns 0 because DigitPrefilter uses no heap allocation.
//
// The prefilter is stateless and relies on simd.MemchrDigitAt which
// operates directly on the input slice without additional allocations.
func (p *DigitPrefilter) HeapBytes() int {
	return 0
}
