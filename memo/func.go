package memo

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/on-the-ground/memoize_ive_go/store"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Func is a validated call site for one (K, V) instantiation.
type Func[K, V any] struct {
	site  *Site
	init  Initializer[K, V]
	check func(K) error
}

// Define validates cfg and binds it to site. Errors are returned before any
// call can reach the store.
func Define[K, V any](site *Site, cfg Config[K, V]) (*Func[K, V], error) {
	if err := validate(site, cfg); err != nil {
		return nil, err
	}
	claim(site, identity[K, V](), cfg.Store)
	return &Func[K, V]{site: site, init: cfg.initializer(), check: cfg.keyCheck()}, nil
}

func validate[K, V any](site *Site, cfg Config[K, V]) error {
	var err error
	if site == nil {
		err = multierr.Append(err, ErrNilSite)
	}
	err = multierr.Append(err, cfg.Validate())
	if err != nil {
		return fmt.Errorf("define call site: %w", err)
	}
	return nil
}

// claim records which store kind defined id first. A later definition with
// another kind shares the first store, which is logged.
func claim(site *Site, id reflect.Type, kind StoreKind) {
	r := site.acquire()

	r.mu.Lock()
	defer r.mu.Unlock()
	first, found := r.kinds[id]
	if !found {
		r.kinds[id] = kind
		return
	}
	if first != kind {
		r.logger.Warn("call site already defined with another store kind",
			zap.Stringer("type_identity", id),
			zap.Stringer("store_kind", kind),
			zap.Stringer("existing_store_kind", first),
		)
	}
}

// MustDefine is like Define but panics on a configuration error. It is
// meant for package-level variables.
func MustDefine[K, V any](site *Site, cfg Config[K, V]) *Func[K, V] {
	f, err := Define(site, cfg)
	if err != nil {
		panic(err)
	}
	return f
}

// Hashed binds site to the unordered store.
func Hashed[K comparable, V any](site *Site) *Func[K, V] {
	f := MustDefine(site, Config[K, V]{
		Init: func() store.Store[K, V] { return store.NewHash[K, V]() },
	})
	if !store.StaticallyHashable(reflect.TypeFor[K]()) {
		f.check = checkHashable[K]
	}
	return f
}

// Ordered binds site to the ordered store.
func Ordered[K cmp.Ordered, V any](site *Site) *Func[K, V] {
	return MustDefine(site, Config[K, V]{
		Store: StoreOrdered,
		Init:  func() store.Store[K, V] { return store.NewOrdered[K, V]() },
	})
}

// Do returns the memoized value for key, running compute on a miss. A key
// the store cannot hold panics with ErrKeyNotComparable before the site's
// lock is taken, so the site stays usable.
func (f *Func[K, V]) Do(key K, compute func() V) V {
	if f.check != nil {
		if err := f.check(key); err != nil {
			panic(err)
		}
	}
	return Do(f.site, key, f.init, compute)
}

// Site returns the registry backing f.
func (f *Func[K, V]) Site() *Site {
	return f.site
}

// FallibleFunc is a call site whose computation can fail. Only successful
// results are cached; a failure is returned as is and recomputed next time.
type FallibleFunc[K, V any] struct {
	inner *Func[K, store.Result[V]]
}

// DefineFallible validates cfg and wraps its store with store.Fallible.
func DefineFallible[K, V any](site *Site, cfg Config[K, V]) (*FallibleFunc[K, V], error) {
	if err := validate(site, cfg); err != nil {
		return nil, err
	}
	claim(site, identity[K, store.Result[V]](), cfg.Store)
	base := cfg.initializer()
	return &FallibleFunc[K, V]{
		inner: &Func[K, store.Result[V]]{
			site: site,
			init: func() store.Store[K, store.Result[V]] {
				return store.NewFallible(base())
			},
			check: cfg.keyCheck(),
		},
	}, nil
}

func (f *FallibleFunc[K, V]) Do(key K, compute func() (V, error)) (V, error) {
	r := f.inner.Do(key, func() store.Result[V] {
		v, err := compute()
		return store.Result[V]{Value: v, Err: err}
	})
	return r.Value, r.Err
}

func (f *FallibleFunc[K, V]) Site() *Site {
	return f.inner.site
}
