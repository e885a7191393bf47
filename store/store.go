// Package store defines the capability a keyed container must provide to
// back a memoized call site, plus the built-in implementations.
//
// Stores are not required to be safe for concurrent use. The call-site
// registry in package memo serializes every Get and Insert.
package store

// Store maps keys to previously computed values.
type Store[K, V any] interface {
	// Insert associates value with key, replacing any value stored under an equal key.
	Insert(key K, value V)
	// Get returns the value stored under key, if any.
	Get(key K) (V, bool)
}

// Cloner is implemented by values that share memory with their copies
// (slices, maps, pointers) and need an explicit deep copy to be cached safely.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns an independent copy of v. Values that do not implement
// Cloner are copied by assignment.
func Clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
