package memo

import "errors"

var (
	// ErrNilSite is returned when a call site is defined without a Site.
	ErrNilSite = errors.New("call site is nil")

	// ErrNoInitializer is returned when the chosen store has no default initializer and none was given.
	ErrNoInitializer = errors.New("store has no default initializer")

	// ErrKeyNotComparable is returned when the hash store is chosen for a key type that cannot be hashed.
	ErrKeyNotComparable = errors.New("key type is not comparable")

	// ErrKeyNotOrdered is returned when the ordered store is chosen for a key type without a natural order.
	ErrKeyNotOrdered = errors.New("key type has no natural order")

	// ErrUnknownStore is returned for a StoreKind outside the known set.
	ErrUnknownStore = errors.New("unknown store kind")

	// ErrPoisoned is raised (as a panic) by every call on a site whose critical section panicked before.
	ErrPoisoned = errors.New("call site is poisoned")

	// ErrStoreMismatch is raised when a type identity resolves to a store of another type.
	ErrStoreMismatch = errors.New("store does not match type identity")
)
