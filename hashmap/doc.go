// Package hashmap provides Map, a separate-chaining hash table with unique keys
// and automatic growth. It is the node registry behind core.Graph and the
// settled-set used by the dijkstra engine.
//
// Overview:
//
//   - Keys of any type are supported; hashing and equality are supplied by a
//     Hasher[K] at construction (StringHasher, IntHasher, StringerHasher, or a
//     HasherFunc built from two plain functions).
//   - Buckets are addressed by hash(key) mod capacity. Each bucket holds a chain
//     of entries that is scanned linearly for an equal key.
//   - After every successful Put, if size/capacity reaches LoadFactor (0.8) the
//     capacity doubles and every live entry is re-indexed into a fresh bucket slice.
//
// Complexity:
//
//   - Put, ContainsKey, Get, Remove: expected O(1), worst case O(n) for one chain.
//   - Resize: O(n), amortized O(1) per Put.
//   - Keys, Range: O(capacity + n).
//
// Errors (sentinel):
//
//   - ErrNullKey       the key is nil (nil interface, or IsNil() reports true).
//   - ErrDuplicateKey  Put on a key that already has a mapping.
//   - ErrKeyNotFound   Get or Remove on an absent key.
//   - ErrBadCapacity   WithCapacity received a non-positive value (panics).
//
// Thread safety:
//
//   - Map has no internal locking. Serialize mutations externally; concurrent
//     readers are safe only while no goroutine mutates.
//
// Example usage:
//
//	m := hashmap.New[string, int](hashmap.StringHasher{})
//	_ = m.Put("A", 1)
//	v, err := m.Get("A") // 1, nil
package hashmap
