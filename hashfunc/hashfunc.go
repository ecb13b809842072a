package hashfunc

// HashFunc - Interface that permits a user of the HashMap to supply a custom hash strategy suited for its
// particular type and distribution of keys.
// The bucket for a key is selected as Hash(key) modulo the current number of buckets, so the only requirement
// is that equal keys always give equal hash values. A uniform spread over the low bits gives shorter chains.
type HashFunc[K any] interface {
	// Hash - Given key it returns an unsigned hash value
	Hash(key K) uint64
}

// Func - Adapter that allows an ordinary function to be used as a HashFunc
type Func[K any] func(key K) uint64

// Hash - Calls f(key)
func (f Func[K]) Hash(key K) uint64 {
	return f(key)
}
