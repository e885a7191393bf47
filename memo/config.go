package memo

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/on-the-ground/memoize_ive_go/store"
)

// StoreKind selects the store backing a call site.
type StoreKind int

const (
	// StoreHash is the unordered store. It is the default.
	StoreHash StoreKind = iota
	// StoreOrdered is the B-tree backed ordered store.
	StoreOrdered
	// StoreCustom is a user-defined store. It requires Config.Init.
	StoreCustom
)

func (k StoreKind) String() string {
	switch k {
	case StoreHash:
		return "hash"
	case StoreOrdered:
		return "ordered"
	case StoreCustom:
		return "custom"
	default:
		return fmt.Sprintf("StoreKind(%d)", int(k))
	}
}

// ParseStoreKind parses the names returned by StoreKind.String.
func ParseStoreKind(s string) (StoreKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hash":
		return StoreHash, nil
	case "ordered":
		return StoreOrdered, nil
	case "custom":
		return StoreCustom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStore, s)
	}
}

// Config describes how a call site stores its (K, V) entries.
type Config[K, V any] struct {
	// Store picks the store kind. Defaults to StoreHash.
	Store StoreKind
	// Init overrides the default initializer of Store. Required for StoreCustom.
	Init Initializer[K, V]
}

// Validate reports why the chosen store kind cannot be built for K. A valid
// Config is guaranteed to produce a store on first use.
func (c Config[K, V]) Validate() error {
	keyType := reflect.TypeFor[K]()

	switch c.Store {
	case StoreHash:
		if c.Init == nil && !keyType.Comparable() {
			return fmt.Errorf("%w: %s", ErrKeyNotComparable, keyType)
		}
	case StoreOrdered:
		if c.Init == nil {
			if _, ok := store.DefaultCompare[K](); !ok {
				return fmt.Errorf("%w: %s", ErrKeyNotOrdered, keyType)
			}
		}
	case StoreCustom:
		if c.Init == nil {
			return fmt.Errorf("%w: %s store", ErrNoInitializer, c.Store)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStore, c.Store)
	}
	return nil
}

// keyCheck returns the per-call key check for c, or nil when every key of
// type K is safe for c's store.
func (c Config[K, V]) keyCheck() func(K) error {
	if c.Store != StoreHash || c.Init != nil || store.StaticallyHashable(reflect.TypeFor[K]()) {
		return nil
	}
	return checkHashable[K]
}

func checkHashable[K any](key K) error {
	if !store.Hashable(key) {
		return fmt.Errorf("%w: key %v of type %T", ErrKeyNotComparable, key, key)
	}
	return nil
}

// initializer assumes c is valid.
func (c Config[K, V]) initializer() Initializer[K, V] {
	if c.Init != nil {
		return c.Init
	}
	switch c.Store {
	case StoreOrdered:
		compare, _ := store.DefaultCompare[K]()
		return func() store.Store[K, V] {
			return store.NewOrderedFunc[K, V](compare)
		}
	default:
		return func() store.Store[K, V] {
			return store.NewHashAny[K, V]()
		}
	}
}
