package store

import "reflect"

var (
	_ Store[string, int] = (*Hash[string, int])(nil)
	_ Store[any, int]    = (*HashAny[any, int])(nil)
)

// Hash is the unordered store, backed by a Go map.
type Hash[K comparable, V any] struct {
	entries map[K]V
}

// NewHash returns an empty unordered store.
func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{entries: make(map[K]V)}
}

func (h *Hash[K, V]) Insert(key K, value V) {
	h.entries[key] = value
}

func (h *Hash[K, V]) Get(key K) (V, bool) {
	v, ok := h.entries[key]
	return v, ok
}

func (h *Hash[K, V]) Len() int {
	return len(h.entries)
}

// HashAny is the unordered store for key types that are only known to be
// comparable at run time. Inserting or looking up a key whose dynamic value
// is not Hashable panics, exactly like a map[any]V would; callers check
// keys with Hashable first.
type HashAny[K any, V any] struct {
	entries map[any]V
}

// NewHashAny returns an empty unordered store keyed by dynamic equality.
func NewHashAny[K any, V any]() *HashAny[K, V] {
	return &HashAny[K, V]{entries: make(map[any]V)}
}

func (h *HashAny[K, V]) Insert(key K, value V) {
	h.entries[key] = value
}

func (h *HashAny[K, V]) Get(key K) (V, bool) {
	v, ok := h.entries[key]
	return v, ok
}

func (h *HashAny[K, V]) Len() int {
	return len(h.entries)
}

// Hashable reports whether key can be used as a Go map key without
// panicking. Unlike reflect.Type.Comparable it looks at dynamic values, so
// [2]any{[]int{1}, 1} is not hashable although its static type is comparable.
func Hashable(key any) bool {
	return hashable(reflect.ValueOf(key))
}

func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true // nil interface
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return hashable(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

// StaticallyHashable reports whether every value of t is Hashable, that is
// t is comparable and holds no interface values.
func StaticallyHashable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return StaticallyHashable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !StaticallyHashable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return t.Comparable()
	}
}
