package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Uses a SWAR (SIMD Within A Register) technique, processing 8 bytes at a
// time via uint64 bitwise operations, with a byte-by-byte fallback for short
// inputs. See memchrGeneric for implementation details.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// On every platform, this function uses pure Go SWAR technique to check
// both needles in parallel within 8-byte chunks.
//
// The function returns the position of whichever needle appears first in haystack.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or needle3
// in haystack, or -1 if none are present.
//
// On every platform, this function uses pure Go SWAR technique to check
// all three needles in parallel within 8-byte chunks.
//
// The function returns the position of whichever needle appears first in haystack.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
