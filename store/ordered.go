package store

import (
	"cmp"
	"reflect"

	"github.com/google/btree"
)

var _ Store[int, int] = (*Ordered[int, int])(nil)

// treeDegree is the node degree of the backing B-tree.
const treeDegree = 32

// Comparer is implemented by key types that have a natural total order but
// are not one of Go's built-in ordered types.
type Comparer[K any] interface {
	// Compare returns a negative number when the receiver sorts before other,
	// zero when they are equal and a positive number otherwise.
	Compare(other K) int
}

type entry[K, V any] struct {
	key   K
	value V
}

// Ordered is the ordered store, backed by a B-tree. Two keys are equal when
// the compare function returns zero for them.
type Ordered[K, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// NewOrdered returns an ordered store for one of Go's built-in ordered key types.
func NewOrdered[K cmp.Ordered, V any]() *Ordered[K, V] {
	return NewOrderedFunc[K, V](cmp.Compare[K])
}

// NewOrderedFunc returns an ordered store using compare as the key order.
func NewOrderedFunc[K, V any](compare func(a, b K) int) *Ordered[K, V] {
	if compare == nil {
		panic("compare function should not be nil")
	}
	return &Ordered[K, V]{
		tree: btree.NewG[entry[K, V]](treeDegree, func(a, b entry[K, V]) bool {
			return compare(a.key, b.key) < 0
		}),
	}
}

func (o *Ordered[K, V]) Insert(key K, value V) {
	o.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
}

func (o *Ordered[K, V]) Get(key K) (V, bool) {
	e, ok := o.tree.Get(entry[K, V]{key: key})
	return e.value, ok
}

func (o *Ordered[K, V]) Len() int {
	return o.tree.Len()
}

// Ascend calls fn for every entry in key order until fn returns false.
func (o *Ordered[K, V]) Ascend(fn func(key K, value V) bool) {
	o.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.value)
	})
}

// DefaultCompare resolves the natural order of K: its Compare method when K
// implements Comparer, or the built-in order when K's underlying kind is an
// integer, float or string. It reports false when K has no natural order.
func DefaultCompare[K any]() (func(a, b K) int, bool) {
	var zero K
	if _, ok := any(zero).(Comparer[K]); ok {
		return func(a, b K) int {
			return any(a).(Comparer[K]).Compare(b)
		}, true
	}

	switch reflect.TypeFor[K]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	default:
		return nil, false
	}
}
