package hashfunc

import (
	"encoding/binary"
	"hash/crc32"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Comparable - The default hash strategy, implemented using maphash.Comparable. The seed is picked once when
// the strategy is created, so every table sharing the same instance places equal keys in the same buckets.
// Hash values are not stable between program runs.
type Comparable[K comparable] struct {
	seed maphash.Seed
}

// NewComparable - Returns a pointer to a new Comparable instance with a random seed
func NewComparable[K comparable]() *Comparable[K] {
	return &Comparable[K]{seed: maphash.MakeSeed()}
}

// Hash - Given key it returns a hash value
func (C *Comparable[K]) Hash(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}

// XXHashString - Hash strategy for string keys using xxhash (64 bits, seed 0). Values are stable between runs.
type XXHashString struct{}

// NewXXHashString - Returns a new XXHashString instance
func NewXXHashString() XXHashString {
	return XXHashString{}
}

// Hash - Given key it returns a hash value
func (XXHashString) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXHashInteger - Hash strategy for integer keys using xxhash over the 8 byte little endian form of the key
type XXHashInteger[K constraints.Integer] struct{}

// NewXXHashInteger - Returns a new XXHashInteger instance
func NewXXHashInteger[K constraints.Integer]() XXHashInteger[K] {
	return XXHashInteger[K]{}
}

// Hash - Given key it returns a hash value
func (XXHashInteger[K]) Hash(key K) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	return xxhash.Sum64(b[:])
}

// CRC32String - Hash strategy for string keys using crc32.ChecksumIEEE. Only the lower 32 bits are used,
// which is plenty for in memory bucket counts.
type CRC32String struct{}

// NewCRC32String - Returns a new CRC32String instance
func NewCRC32String() CRC32String {
	return CRC32String{}
}

// Hash - Given key it returns a hash value
func (CRC32String) Hash(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// Identity - Hash strategy for integer keys returning the key itself, giving fully predictable bucket placement
type Identity[K constraints.Integer] struct{}

// NewIdentity - Returns a new Identity instance
func NewIdentity[K constraints.Integer]() Identity[K] {
	return Identity[K]{}
}

// Hash - Given key it returns the key converted to uint64
func (Identity[K]) Hash(key K) uint64 {
	return uint64(key)
}
