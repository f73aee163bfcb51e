package slices

// Filter reduces slice values using given function.
// It operates with a copy of given slice; use RemoveAll with an inverted
// predicate to compact in place instead.
func Filter[S ~[]T, T any](s S, fn func(T) bool) S {
	if len(s) == 0 {
		return s
	}
	result := make(S, 0, len(s))
	for _, v := range s {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}
