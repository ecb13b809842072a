package utils

import "math/bits"

// RoundUp2 - Returns the nearest power of 2 that is equal to or higher than a, for a less than 1 it returns 1
func RoundUp2(a int) int {
	if a <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(a-1))
}

// MaxInt - Returns the largest of a and b
func MaxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
