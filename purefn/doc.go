// Package purefn provides high-level memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family memoizes pure function calls by all of their input
// values. Arguments that are not comparable are keyed by their String()
// when they implement fmt.Stringer; anything else panics.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: Typed, generic memoizers for common arities.
//   - One memo.Site per tableized function, unbounded and safe for concurrent use.
//   - Recursive tableized functions do not deadlock: the table lock is not held while computing.
//
// If you need to key on a projection of the arguments, or to pick the store,
// use package memo directly.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
