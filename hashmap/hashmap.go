package hashmap

// entry is one key/value pair stored in a bucket chain.
type entry[K, V any] struct {
	key   K
	value V
}

// Map is a separate-chaining hash table with unique keys.
//
// buckets has length Capacity(); each element is a chain scanned linearly.
// size counts live entries. The zero value is not usable; call New.
type Map[K, V any] struct {
	hasher  Hasher[K]
	buckets [][]entry[K, V]
	size    int
}

// New creates an empty Map that hashes keys with h.
// Panics if h is nil.
// Complexity: O(capacity).
func New[K, V any](h Hasher[K], opts ...Option) *Map[K, V] {
	if h == nil {
		panic("hashmap: nil Hasher")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map[K, V]{
		hasher:  h,
		buckets: make([][]entry[K, V], cfg.Capacity),
	}
}

// Put inserts a new mapping key → value.
//
// Steps:
//  1. Reject a nil key (ErrNullKey).
//  2. Reject a key that already maps to a value (ErrDuplicateKey); the existing
//     mapping is left unchanged.
//  3. Append the entry to its bucket chain and increment size.
//  4. If size/capacity >= LoadFactor, double capacity and rehash.
//
// Complexity: expected O(1), amortized over resizes.
func (m *Map[K, V]) Put(key K, value V) error {
	if isNullKey(key) {
		return ErrNullKey
	}
	idx := m.index(key)
	if m.find(idx, key) >= 0 {
		return ErrDuplicateKey
	}

	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.size++

	if float64(m.size)/float64(len(m.buckets)) >= LoadFactor {
		m.resize()
	}

	return nil
}

// ContainsKey reports whether key has a mapping. A nil key is never present.
// Complexity: expected O(1).
func (m *Map[K, V]) ContainsKey(key K) bool {
	if isNullKey(key) {
		return false
	}

	return m.find(m.index(key), key) >= 0
}

// Get returns the value mapped to key.
// Errors: ErrNullKey, ErrKeyNotFound.
// Complexity: expected O(1).
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if isNullKey(key) {
		return zero, ErrNullKey
	}
	idx := m.index(key)
	pos := m.find(idx, key)
	if pos < 0 {
		return zero, ErrKeyNotFound
	}

	return m.buckets[idx][pos].value, nil
}

// Remove deletes the mapping for key and returns the value it held.
// Errors: ErrNullKey, ErrKeyNotFound.
// Complexity: expected O(1).
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	if isNullKey(key) {
		return zero, ErrNullKey
	}
	idx := m.index(key)
	pos := m.find(idx, key)
	if pos < 0 {
		return zero, ErrKeyNotFound
	}

	chain := m.buckets[idx]
	removed := chain[pos].value
	last := len(chain) - 1
	chain[pos] = chain[last]
	chain[last] = entry[K, V]{} // release references held by the tail slot
	m.buckets[idx] = chain[:last]
	m.size--

	return removed, nil
}

// Clear drops every mapping. Capacity is unchanged.
// Complexity: O(capacity).
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Size returns the number of live mappings.
func (m *Map[K, V]) Size() int { return m.size }

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Keys returns every stored key in bucket order. Insertion order is not preserved.
// Complexity: O(capacity + size).
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for i := range chain {
			keys = append(keys, chain[i].key)
		}
	}

	return keys
}

// Range calls fn for every mapping in bucket order until fn returns false.
// fn must not mutate m.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, chain := range m.buckets {
		for i := range chain {
			if !fn(chain[i].key, chain[i].value) {
				return
			}
		}
	}
}

// index maps key to its bucket: hash(key) mod capacity.
// The hash is unsigned, so the result is never negative.
func (m *Map[K, V]) index(key K) int {
	return int(m.hasher.Hash(key) % uint64(len(m.buckets)))
}

// find returns the position of key inside bucket idx, or -1.
func (m *Map[K, V]) find(idx int, key K) int {
	chain := m.buckets[idx]
	for i := range chain {
		if m.hasher.Equal(chain[i].key, key) {
			return i
		}
	}

	return -1
}

// resize doubles capacity and re-indexes every entry into a fresh bucket slice.
func (m *Map[K, V]) resize() {
	old := m.buckets
	m.buckets = make([][]entry[K, V], 2*len(old))
	for _, chain := range old {
		for _, e := range chain {
			idx := m.index(e.key)
			m.buckets[idx] = append(m.buckets[idx], e)
		}
	}
}
