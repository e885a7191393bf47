package purefn

import "github.com/on-the-ground/memoize_ive_go/memo"

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...memo.SiteOption,
) func(I1) (O1, O2) {
	table := memo.Hashed[[1]ComparableOrString, result[O1, O2]](memo.NewSite(opts...))
	return func(i1 I1) (O1, O2) {
		keys := [1]ComparableOrString{tableKey(i1)}
		res := table.Do(keys, func() result[O1, O2] {
			v1, v2 := pureFn(i1)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...memo.SiteOption,
) func(I1, I2) (O1, O2) {
	table := memo.Hashed[[2]ComparableOrString, result[O1, O2]](memo.NewSite(opts...))
	return func(i1 I1, i2 I2) (O1, O2) {
		keys := [2]ComparableOrString{tableKey(i1), tableKey(i2)}
		res := table.Do(keys, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...memo.SiteOption,
) func(I1, I2, I3) (O1, O2) {
	table := memo.Hashed[[3]ComparableOrString, result[O1, O2]](memo.NewSite(opts...))
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		keys := [3]ComparableOrString{tableKey(i1), tableKey(i2), tableKey(i3)}
		res := table.Do(keys, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2, i3)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...memo.SiteOption,
) func(I1, I2, I3, I4) (O1, O2) {
	table := memo.Hashed[[4]ComparableOrString, result[O1, O2]](memo.NewSite(opts...))
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		keys := [4]ComparableOrString{tableKey(i1), tableKey(i2), tableKey(i3), tableKey(i4)}
		res := table.Do(keys, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2, i3, i4)
			return result[O1, O2]{O1: v1, O2: v2}
		})
		return res.O1, res.O2
	}
}
