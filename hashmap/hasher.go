package hashmap

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher supplies hashing and equality for keys of type K.
// Equal keys must produce equal hashes.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// HasherFunc adapts a pair of plain functions to the Hasher interface.
type HasherFunc[K any] struct {
	HashFn  func(K) uint64
	EqualFn func(a, b K) bool
}

// Hash calls h.HashFn.
func (h HasherFunc[K]) Hash(key K) uint64 { return h.HashFn(key) }

// Equal calls h.EqualFn.
func (h HasherFunc[K]) Equal(a, b K) bool { return h.EqualFn(a, b) }

// StringHasher hashes strings with xxHash64.
type StringHasher struct{}

// Hash returns the xxHash64 digest of key.
func (StringHasher) Hash(key string) uint64 { return xxhash.Sum64String(key) }

// Equal reports a == b.
func (StringHasher) Equal(a, b string) bool { return a == b }

// Integer is the set of integer kinds accepted by IntHasher.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHasher hashes integer keys by mixing their bits (splitmix64 finalizer),
// so sequential ids spread across buckets.
type IntHasher[T Integer] struct{}

// Hash returns the mixed 64-bit representation of key.
func (IntHasher[T]) Hash(key T) uint64 {
	x := uint64(key)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Equal reports a == b.
func (IntHasher[T]) Equal(a, b T) bool { return a == b }

// RuneHasher hashes single-character node ids.
type RuneHasher = IntHasher[rune]

// StringerHasher hashes any fmt.Stringer by its String() form and compares
// keys with ==. Two keys equal under == must render the same string.
type StringerHasher[K interface {
	comparable
	fmt.Stringer
}] struct{}

// Hash returns the xxHash64 digest of key.String().
func (StringerHasher[K]) Hash(key K) uint64 { return xxhash.Sum64String(key.String()) }

// Equal reports a == b.
func (StringerHasher[K]) Equal(a, b K) bool { return a == b }
