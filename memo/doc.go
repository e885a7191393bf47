// Package memo memoizes deterministic computations per call site.
//
// A call site is a *Site value, usually a package-level variable placed next
// to the function it memoizes. The site is the process-wide registry for
// that one function: on first use it lazily builds a table of stores indexed
// by the (key type, value type) pair, so a single Site can back a generic
// function instantiated with many type arguments, each instantiation getting
// its own store.
//
//	var fibSite memo.Site
//
//	var fib func(n int) int
//
//	func init() {
//	    m := memo.Hashed[int, int](&fibSite)
//	    fib = memo.Wrap1(m, func(n int) int { return n }, func(n int) int {
//	        if n < 2 {
//	            return n
//	        }
//	        return fib(n-1) + fib(n-2)
//	    })
//	}
//
// Every lookup and insert runs under the site's mutex. The computation
// itself runs with the lock released, so it may recurse into the same site.
// Two goroutines missing the same key at the same time both compute it, and
// the last insert wins.
//
// A panic inside the critical section, which only a misbehaving custom
// store can cause, poisons the site: every later call on it panics with
// ErrPoisoned.
package memo
