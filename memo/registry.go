package memo

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/memoize_ive_go/shared/helper"
	"github.com/on-the-ground/memoize_ive_go/store"

	"go.uber.org/zap"
)

// pair exists only to be instantiated: reflect.TypeFor[pair[K, V]] is the
// type identity of a (key type, value type) instantiation.
type pair[K, V any] struct{}

func identity[K, V any]() reflect.Type {
	return reflect.TypeFor[pair[K, V]]()
}

// Initializer builds the store for one type identity of a call site.
type Initializer[K, V any] func() store.Store[K, V]

// resolveOrCreate must be called holding r.mu.
func resolveOrCreate[K, V any](r *root, init Initializer[K, V]) store.Store[K, V] {
	id := identity[K, V]()
	if _, found := r.stores[id]; !found {
		s := init()
		if s == nil {
			panic(fmt.Errorf("%w: initializer for %s returned nil", ErrNoInitializer, id))
		}
		r.stores[id] = s
		r.logger.Debug("store created",
			zap.Stringer("type_identity", id),
			zap.String("store", fmt.Sprintf("%T", s)),
		)
	}
	return resolve[K, V](r)
}

// resolve must be called holding r.mu, after the store for (K, V) exists.
func resolve[K, V any](r *root) store.Store[K, V] {
	id := identity[K, V]()
	s, ok := helper.GetTypedValueOf2[store.Store[K, V]](func() (any, bool) {
		s, found := r.stores[id]
		return s, found
	})
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrStoreMismatch, id))
	}
	return s
}

// Do returns the value memoized at site for key, running compute and
// caching its result on a miss. init builds the store the first time the
// site sees the (K, V) pair.
//
// The lock is released while compute runs. Values implementing
// store.Cloner are cloned on the way in and on the way out, so the caller
// never shares memory with the cached copy.
//
// Do does not check keys. A key the store panics on poisons the site; use
// Func.Do, which rejects such keys before locking.
func Do[K, V any](site *Site, key K, init Initializer[K, V], compute func() V) V {
	r := site.acquire()

	var (
		hit   V
		found bool
	)
	r.critical(func() {
		hit, found = resolveOrCreate(r, init).Get(key)
	})
	if found {
		r.hits.Add(1)
		return store.Clone(hit)
	}
	r.misses.Add(1)

	miss := compute()

	r.critical(func() {
		resolve[K, V](r).Insert(key, store.Clone(miss))
	})
	return miss
}
