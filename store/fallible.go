package store

var _ Store[string, Result[int]] = (*Fallible[string, int])(nil)

// Result is the outcome of a computation that can fail.
type Result[V any] struct {
	Value V
	Err   error
}

// Ok returns a successful outcome.
func Ok[V any](v V) Result[V] {
	return Result[V]{Value: v}
}

// Fail returns a failed outcome.
func Fail[V any](err error) Result[V] {
	return Result[V]{Err: err}
}

// Clone copies the value with Clone and keeps the error as is.
func (r Result[V]) Clone() Result[V] {
	return Result[V]{Value: Clone(r.Value), Err: r.Err}
}

// Fallible wraps a base store so that only successful outcomes are cached.
// Failures pass through Insert without touching the base store, so the next
// lookup for the same key misses and the computation runs again.
type Fallible[K, V any] struct {
	base Store[K, V]
}

// NewFallible wraps base. It panics when base is nil.
func NewFallible[K, V any](base Store[K, V]) *Fallible[K, V] {
	if base == nil {
		panic("base store should not be nil")
	}
	return &Fallible[K, V]{base: base}
}

// Put stores r's value when r succeeded and returns the outcome the caller
// should observe.
func (f *Fallible[K, V]) Put(key K, r Result[V]) Result[V] {
	if r.Err != nil {
		return r
	}
	f.base.Insert(key, r.Value)
	return Ok(r.Value)
}

func (f *Fallible[K, V]) Insert(key K, r Result[V]) {
	f.Put(key, r)
}

func (f *Fallible[K, V]) Get(key K) (Result[V], bool) {
	v, ok := f.base.Get(key)
	if !ok {
		return Result[V]{}, false
	}
	return Ok(v), true
}
