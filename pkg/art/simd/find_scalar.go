package simd

// findKeyIndexScalar is the portable lane for FindKeyIndex.
func findKeyIndexScalar(keys *[16]byte, n int, key byte) int {
	for i := 0; i < n; i++ {
		if keys[i] == key {
			return i
		}
	}
	return -1
}

// findInsertPositionScalar returns the first index whose key is greater
// than key, or n. Byte comparison in Go is unsigned.
func findInsertPositionScalar(keys *[16]byte, n int, key byte) int {
	for i := 0; i < n; i++ {
		if key < keys[i] {
			return i
		}
	}
	return n
}
