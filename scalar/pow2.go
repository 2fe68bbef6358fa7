// SPDX-License-Identifier: MIT

package scalar

// PowerOfTwo returns the smallest power of two that is >= v.
// PowerOfTwo(0) is 1. Values above 1<<31 overflow to 0.
//
// Complexity: O(1).
func PowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}

// IsPowerOfTwo reports whether v is a power of two. Zero is not.
func IsPowerOfTwo(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}
