package simd

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is found. Checks each byte against the range ['0'-'9'].
func MemchrDigit(haystack []byte) int {
	return memchrDigitGeneric(haystack)
}

// MemchrDigitAt returns the index of the first ASCII digit [0-9] at or after
// position 'at' in haystack, or -1 if no digit is found.
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}

	pos := memchrDigitGeneric(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}
