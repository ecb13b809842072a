package hashfunc

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFunc_Hash(t *testing.T) {
	t.Run("calls the wrapped function", func(t *testing.T) {
		// Prepare
		var h HashFunc[string] = Func[string](func(key string) uint64 { return uint64(len(key)) })

		// Execute
		v := h.Hash("abcd")

		// Check
		assert.Equal(t, uint64(4), v, "wrapped function used")
	})
}

func TestComparable_Hash(t *testing.T) {
	t.Run("equal keys give equal hash values", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }
		h := NewComparable[point]()

		// Execute and Check
		assert.Equal(t, h.Hash(point{1, 2}), h.Hash(point{1, 2}), "same hash for equal keys")
		assert.NotEqual(t, h.Hash(point{1, 2}), h.Hash(point{2, 1}), "different hash for different keys")
	})

	t.Run("string keys built separately hash the same", func(t *testing.T) {
		// Prepare
		h := NewComparable[string]()
		a := "key-" + "1"
		b := string([]byte{'k', 'e', 'y', '-', '1'})

		// Execute and Check
		assert.Equal(t, h.Hash(a), h.Hash(b), "hash depends on contents only")
	})
}

func TestXXHashString_Hash(t *testing.T) {
	t.Run("returns the xxhash64 value", func(t *testing.T) {
		// Prepare
		h := NewXXHashString()

		// Execute
		v := h.Hash("")

		// Check
		assert.Equal(t, uint64(0xef46db3751d8e999), v, "xxhash64 of empty string")
	})

	t.Run("is stable for equal keys", func(t *testing.T) {
		// Prepare
		h := NewXXHashString()

		// Execute and Check
		assert.Equal(t, h.Hash("abc"), h.Hash("ab"+"c"), "deterministic")
		assert.NotEqual(t, h.Hash("abc"), h.Hash("abd"), "different keys")
	})
}

func TestXXHashInteger_Hash(t *testing.T) {
	t.Run("signed and unsigned keys with the same bits hash the same", func(t *testing.T) {
		// Prepare
		hs := NewXXHashInteger[int64]()
		hu := NewXXHashInteger[uint64]()

		// Execute and Check
		assert.Equal(t, hs.Hash(-1), hu.Hash(^uint64(0)), "same bit pattern")
		assert.NotEqual(t, hs.Hash(1), hs.Hash(2), "different keys")
	})
}

func TestCRC32String_Hash(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		a := string([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
		h := NewCRC32String()

		// Execute
		bucketNo := h.Hash(a) % 16

		// Check
		assert.Equal(t, uint64(6), bucketNo, "create a valid bucket number")
	})
}

func TestIdentity_Hash(t *testing.T) {
	t.Run("returns the key", func(t *testing.T) {
		// Prepare
		h := NewIdentity[int]()

		// Execute and Check
		assert.Equal(t, uint64(0), h.Hash(0), "zero")
		assert.Equal(t, uint64(7), h.Hash(7), "seven")
	})
}
