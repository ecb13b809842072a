package store

import (
	"github.com/gostonefire/linkedhashmap/internal/conf"
)

// Handle - Identifies one entry in the store. The generation part makes a handle go stale as soon as the
// entry it points to is removed, even if the slot is later reused by another entry.
type Handle struct {
	Index int32
	Gen   uint32
}

// NilHandle - Handle that never refers to a live entry
var NilHandle = Handle{Index: conf.NoEntry}

// entry - One key/value pair together with its links in the order list
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  int32
	next  int32
	gen   uint32
	live  bool
}

// Store - Ordered element store. Entries are kept in fixed size blocks that are never moved or copied once
// allocated, so an entry keeps its index (and any pointer to its value) until it is removed.
// The order list is doubly linked through entry indices and removed slots are recycled through a free list.
type Store[K comparable, V any] struct {
	blocks    [][]entry[K, V]
	allocated int32
	head      int32
	tail      int32
	free      int32
	count     int
}

// NewStore - Returns a pointer to a new empty Store
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		head: conf.NoEntry,
		tail: conf.NoEntry,
		free: conf.NoEntry,
	}
}

// Len - Returns number of live entries
func (S *Store[K, V]) Len() int {
	return S.count
}

// Front - Returns index of the first entry in order, or conf.NoEntry if the store is empty
func (S *Store[K, V]) Front() int32 {
	return S.head
}

// Back - Returns index of the last entry in order, or conf.NoEntry if the store is empty
func (S *Store[K, V]) Back() int32 {
	return S.tail
}

// Next - Returns index of the entry following idx, or conf.NoEntry if idx is the last one
func (S *Store[K, V]) Next(idx int32) int32 {
	return S.at(idx).next
}

// Prev - Returns index of the entry preceding idx, or conf.NoEntry if idx is the first one
func (S *Store[K, V]) Prev(idx int32) int32 {
	return S.at(idx).prev
}

// Key - Returns the key stored at idx
func (S *Store[K, V]) Key(idx int32) K {
	return S.at(idx).key
}

// Value - Returns the value stored at idx
func (S *Store[K, V]) Value(idx int32) V {
	return S.at(idx).value
}

// ValuePtr - Returns a pointer to the value stored at idx, it stays valid until the entry is removed
func (S *Store[K, V]) ValuePtr(idx int32) *V {
	return &S.at(idx).value
}

// HandleOf - Returns a handle to the live entry at idx
func (S *Store[K, V]) HandleOf(idx int32) Handle {
	return Handle{Index: idx, Gen: S.at(idx).gen}
}

// Valid - Returns true if the handle still refers to the live entry it was created for
func (S *Store[K, V]) Valid(h Handle) bool {
	if h.Index < 0 || h.Index >= S.allocated {
		return false
	}
	e := S.at(h.Index)

	return e.live && e.gen == h.Gen
}

// PushFront - Adds a new entry first in order and returns its index
func (S *Store[K, V]) PushFront(key K, value V) int32 {
	idx := S.alloc()
	e := S.at(idx)
	e.key = key
	e.value = value
	e.live = true
	e.prev = conf.NoEntry
	e.next = S.head

	if S.head != conf.NoEntry {
		S.at(S.head).prev = idx
	} else {
		S.tail = idx
	}
	S.head = idx
	S.count++

	return idx
}

// Remove - Unlinks the entry at idx from the order list and recycles its slot.
// Any handle to the entry goes stale.
func (S *Store[K, V]) Remove(idx int32) {
	e := S.at(idx)
	if !e.live {
		return
	}

	if e.prev != conf.NoEntry {
		S.at(e.prev).next = e.next
	} else {
		S.head = e.next
	}
	if e.next != conf.NoEntry {
		S.at(e.next).prev = e.prev
	} else {
		S.tail = e.prev
	}

	var zeroKey K
	var zeroValue V
	e.key = zeroKey
	e.value = zeroValue
	e.live = false
	e.gen++
	e.prev = conf.NoEntry
	e.next = S.free
	S.free = idx
	S.count--
}

// Clear - Removes all entries, allocated blocks are kept for reuse
func (S *Store[K, V]) Clear() {
	for idx := S.head; idx != conf.NoEntry; {
		next := S.at(idx).next
		S.Remove(idx)
		idx = next
	}
}

// alloc - Returns index of a free slot, taken from the free list if possible or else from a new block
func (S *Store[K, V]) alloc() int32 {
	if S.free != conf.NoEntry {
		idx := S.free
		S.free = S.at(idx).next
		return idx
	}

	if int(S.allocated) == len(S.blocks)*conf.BlockSize {
		S.blocks = append(S.blocks, make([]entry[K, V], conf.BlockSize))
	}
	idx := S.allocated
	S.allocated++

	return idx
}

// at - Returns a pointer to the entry at idx
func (S *Store[K, V]) at(idx int32) *entry[K, V] {
	i := int(idx)
	return &S.blocks[i>>conf.BlockShift][i&conf.BlockMask]
}
