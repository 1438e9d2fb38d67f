package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index but scans for a rare byte from needle
// via Memchr first, then verifies the full needle at each candidate.
//
// Algorithm:
//  1. Identify the two rarest bytes in needle (via ByteFrequencies)
//  2. Use Memchr to find candidates for the rarest byte in haystack
//  3. Reject a candidate cheaply if the second-rarest byte doesn't line up
//  4. Verify the full needle match at surviving candidates
//  5. Return position of first match or -1 if not found
//
// Longer needles (> 32 bytes) go through memmemLong, which uses the same
// rare-byte search as short needles; no Two-Way matching is implemented.
//
// Example:
//
//	haystack := []byte("hello world")
//	needle := []byte("world")
//	pos := simd.Memmem(haystack, needle)
//	// pos == 6
//
// Example with not found:
//
//	haystack := []byte("hello world")
//	needle := []byte("xyz")
//	pos := simd.Memmem(haystack, needle)
//	// pos == -1
//
// Example with repeated patterns:
//
//	haystack := []byte("aaaaaabaaaa")
//	needle := []byte("aab")
//	pos := simd.Memmem(haystack, needle)
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	// Edge cases
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}

	// Empty haystack or needle longer than haystack
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}

	// Single byte search - use Memchr directly
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	// For short needles (2-32 bytes), use rare byte heuristic + Memchr
	if needleLen <= 32 {
		return memmemShort(haystack, needle)
	}

	// For long needles, use Two-Way algorithm or simplified approach
	return memmemLong(haystack, needle)
}

// memmemShort handles short needles (2-32 bytes) using a rare-byte heuristic.
// This is the fast path for most real-world patterns.
func memmemShort(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	rare := SelectRareBytes(needle)

	// Search for the rarest byte using Memchr.
	searchStart := 0
	for {
		candidatePos := Memchr(haystack[searchStart:], rare.Byte1)
		if candidatePos == -1 {
			return -1 // Rarest byte not found, needle cannot exist
		}
		candidatePos += searchStart

		needleStartPos := candidatePos - rare.Index1
		if needleStartPos < 0 || needleStartPos+needleLen > haystackLen {
			searchStart = candidatePos + 1
			if searchStart >= haystackLen {
				return -1
			}
			continue
		}

		// Check the second-rarest byte before paying for a full compare:
		// most false candidates for the first byte are rejected here in one
		// comparison instead of needleLen.
		if rare.Index2 != rare.Index1 && haystack[needleStartPos+rare.Index2] != rare.Byte2 {
			searchStart = candidatePos + 1
			if searchStart >= haystackLen {
				return -1
			}
			continue
		}

		if bytesEqual(haystack[needleStartPos:needleStartPos+needleLen], needle) {
			return needleStartPos
		}

		searchStart = candidatePos + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}

// memmemLong handles long needles (> 32 bytes) using a simplified approach.
// For very long needles, we use a combination of rare byte heuristic and
// careful verification to maintain good performance.
func memmemLong(haystack, needle []byte) int {
	// For now, use the same approach as short needles but with additional
	// optimizations possible. Could implement full Two-Way algorithm here.
	// The rare byte heuristic works well even for long needles in most cases.
	return memmemShort(haystack, needle)
}

// bytesEqual is a fast inlined comparison for verification.
// The compiler will optimize this to use efficient comparison methods.
func bytesEqual(a, b []byte) bool {
	// bytes.Equal is already highly optimized and will be inlined
	return bytes.Equal(a, b)
}
