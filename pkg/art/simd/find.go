// Package simd provides the accelerated key search used by Node16.
//
// Two lanes implement the same contract: a portable scalar loop and a
// word-parallel (SWAR) variant that compares eight key bytes per step with
// math/bits. The lane is chosen once at init from the ART_FIND environment
// variable ("scalar" forces the portable loop; anything else selects the
// word-parallel lane) and both lanes are required to return bit-identical
// results — the cross-check lives in this package's tests.
//
// Go byte comparisons are unsigned, so neither lane has the signed-compare
// misordering that plagues intrinsic-based ports for bytes >= 0x80; the
// high-byte cases are pinned by tests regardless.
package simd

import "os"

var useSWAR = os.Getenv("ART_FIND") != "scalar"

// FindKeyIndex returns the index of key within the first n sorted entries
// of keys, or -1 if absent.
func FindKeyIndex(keys *[16]byte, n int, key byte) int {
	if useSWAR {
		return findKeyIndexSWAR(keys, n, key)
	}
	return findKeyIndexScalar(keys, n, key)
}

// FindInsertPosition returns the index at which key must be inserted to
// keep the first n entries of keys sorted. The scan is scalar on every
// lane: at 16 bytes the shift that follows dominates the search.
func FindInsertPosition(keys *[16]byte, n int, key byte) int {
	return findInsertPositionScalar(keys, n, key)
}
