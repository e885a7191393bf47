package purefn

import (
	"fmt"

	"github.com/on-the-ground/memoize_ive_go/memo"
	"github.com/on-the-ground/memoize_ive_go/store"
)

type ComparableOrStringer any
type ComparableOrString any

// TableizeI1O1 memoizes pureFn on its argument. Each call to a Tableize
// function creates a new call site; opts configure it.
func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	opts ...memo.SiteOption,
) func(I1) O1 {
	table := memo.Hashed[[1]ComparableOrString, O1](memo.NewSite(opts...))
	return func(i1 I1) O1 {
		keys := [1]ComparableOrString{tableKey(i1)}
		return table.Do(keys, func() O1 {
			return pureFn(i1)
		})
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	opts ...memo.SiteOption,
) func(I1, I2) O1 {
	table := memo.Hashed[[2]ComparableOrString, O1](memo.NewSite(opts...))
	return func(i1 I1, i2 I2) O1 {
		keys := [2]ComparableOrString{tableKey(i1), tableKey(i2)}
		return table.Do(keys, func() O1 {
			return pureFn(i1, i2)
		})
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...memo.SiteOption,
) func(I1, I2, I3) O1 {
	table := memo.Hashed[[3]ComparableOrString, O1](memo.NewSite(opts...))
	return func(i1 I1, i2 I2, i3 I3) O1 {
		keys := [3]ComparableOrString{tableKey(i1), tableKey(i2), tableKey(i3)}
		return table.Do(keys, func() O1 {
			return pureFn(i1, i2, i3)
		})
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...memo.SiteOption,
) func(I1, I2, I3, I4) O1 {
	table := memo.Hashed[[4]ComparableOrString, O1](memo.NewSite(opts...))
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		keys := [4]ComparableOrString{tableKey(i1), tableKey(i2), tableKey(i3), tableKey(i4)}
		return table.Do(keys, func() O1 {
			return pureFn(i1, i2, i3, i4)
		})
	}
}

// tableKey panics when i is neither comparable nor a fmt.Stringer, before
// the key ever reaches the call site's lock.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	if !store.Hashable(i) {
		panic(fmt.Errorf("tableize: %T is neither comparable nor a fmt.Stringer", i))
	}
	return i
}
