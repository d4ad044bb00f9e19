package hashmap

import "errors"

// Sentinel errors returned by Map operations.
var (
	// ErrNullKey indicates that a nil key was passed to a map operation.
	ErrNullKey = errors.New("hashmap: key is nil")

	// ErrDuplicateKey indicates that Put was called with a key that already maps to a value.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrKeyNotFound indicates that Get or Remove referenced an absent key.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrBadCapacity indicates that a non-positive initial capacity was requested.
	ErrBadCapacity = errors.New("hashmap: capacity must be positive")
)

const (
	// DefaultCapacity is the bucket count of a Map created without WithCapacity.
	DefaultCapacity = 64

	// LoadFactor is the size/capacity ratio that triggers a doubling resize.
	LoadFactor = 0.8
)

// Options configures a Map before creation.
type Options struct {
	Capacity int // initial bucket count; must be > 0
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// WithCapacity sets the initial bucket count.
// Panics with ErrBadCapacity if capacity <= 0.
func WithCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity <= 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = capacity
	}
}

// DefaultOptions returns Options with Capacity set to DefaultCapacity.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}

// Nilable is implemented by pointer-backed key types that can report a nil
// receiver while stored behind an interface. Map treats such keys as null.
type Nilable interface {
	IsNil() bool
}

// isNullKey reports whether key must be rejected with ErrNullKey.
func isNullKey[K any](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	if n, ok := v.(Nilable); ok {
		return n.IsNil()
	}

	return false
}
