package slices

// ReplaceFirst overwrites the first element matching fn with value.
// The scan stops at the first match, later matches stay untouched.
func ReplaceFirst[S ~[]T, T any](s S, fn func(T) bool, value T) error {
	if fn == nil {
		return ErrNilPredicate
	}
	for i := range s {
		if fn(s[i]) {
			s[i] = value
			return nil
		}
	}
	return nil
}
