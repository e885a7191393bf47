package memo

// Wrap1 returns fn memoized through f, keyed by key(a1).
func Wrap1[A1, K, V any](f *Func[K, V], key func(A1) K, fn func(A1) V) func(A1) V {
	return func(a1 A1) V {
		return f.Do(key(a1), func() V { return fn(a1) })
	}
}

// Wrap2 returns fn memoized through f, keyed by key(a1, a2). The key may
// ignore or combine arguments.
func Wrap2[A1, A2, K, V any](f *Func[K, V], key func(A1, A2) K, fn func(A1, A2) V) func(A1, A2) V {
	return func(a1 A1, a2 A2) V {
		return f.Do(key(a1, a2), func() V { return fn(a1, a2) })
	}
}

func Wrap3[A1, A2, A3, K, V any](f *Func[K, V], key func(A1, A2, A3) K, fn func(A1, A2, A3) V) func(A1, A2, A3) V {
	return func(a1 A1, a2 A2, a3 A3) V {
		return f.Do(key(a1, a2, a3), func() V { return fn(a1, a2, a3) })
	}
}

// WrapErr1 is Wrap1 for fallible functions. Errors are never cached.
func WrapErr1[A1, K, V any](f *FallibleFunc[K, V], key func(A1) K, fn func(A1) (V, error)) func(A1) (V, error) {
	return func(a1 A1) (V, error) {
		return f.Do(key(a1), func() (V, error) { return fn(a1) })
	}
}

func WrapErr2[A1, A2, K, V any](f *FallibleFunc[K, V], key func(A1, A2) K, fn func(A1, A2) (V, error)) func(A1, A2) (V, error) {
	return func(a1 A1, a2 A2) (V, error) {
		return f.Do(key(a1, a2), func() (V, error) { return fn(a1, a2) })
	}
}

func Wrap4[A1, A2, A3, A4, K, V any](f *Func[K, V], key func(A1, A2, A3, A4) K, fn func(A1, A2, A3, A4) V) func(A1, A2, A3, A4) V {
	return func(a1 A1, a2 A2, a3 A3, a4 A4) V {
		return f.Do(key(a1, a2, a3, a4), func() V { return fn(a1, a2, a3, a4) })
	}
}

func WrapErr3[A1, A2, A3, K, V any](f *FallibleFunc[K, V], key func(A1, A2, A3) K, fn func(A1, A2, A3) (V, error)) func(A1, A2, A3) (V, error) {
	return func(a1 A1, a2 A2, a3 A3) (V, error) {
		return f.Do(key(a1, a2, a3), func() (V, error) { return fn(a1, a2, a3) })
	}
}

func WrapErr4[A1, A2, A3, A4, K, V any](f *FallibleFunc[K, V], key func(A1, A2, A3, A4) K, fn func(A1, A2, A3, A4) (V, error)) func(A1, A2, A3, A4) (V, error) {
	return func(a1 A1, a2 A2, a3 A3, a4 A4) (V, error) {
		return f.Do(key(a1, a2, a3, a4), func() (V, error) { return fn(a1, a2, a3, a4) })
	}
}
