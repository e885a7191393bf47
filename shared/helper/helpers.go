package helper

// GetTypedValueOf2 safely asserts the result of a getter function to the expected type T.
// ok is false when the getter found nothing or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
