package slices

// RemoveFirst removes the first element matching fn and returns the
// shortened slice. Elements past the match are shifted down one position
// with a single copy, the vacated tail slot is zeroed so removed values
// are not pinned by the backing array.
// It will alter original non-empty slice, consider copy it beforehand.
func RemoveFirst[S ~[]T, T any](s S, fn func(T) bool) (S, error) {
	if fn == nil {
		return s, ErrNilPredicate
	}
	for i := range s {
		if !fn(s[i]) {
			continue
		}
		copy(s[i:], s[i+1:])
		var zero T
		s[len(s)-1] = zero
		return s[:len(s)-1], nil
	}
	return s, nil
}

// RemoveAll removes every element for which fn holds and returns the
// compacted slice together with the number of removed elements. The state
// value is handed to every predicate call, enabling context-dependent
// matching without a closure. A single forward pass copies each survivor
// at most once and keeps their relative order; vacated tail slots are
// zeroed.
// It will alter original non-empty slice, consider copy it beforehand.
func RemoveAll[S ~[]T, T, C any](s S, fn func(T, C) bool, state C) (S, int, error) {
	if fn == nil {
		return s, 0, ErrNilPredicate
	}
	var w int
	for r := range s {
		if fn(s[r], state) {
			continue
		}
		if w != r {
			s[w] = s[r]
		}
		w++
	}
	removed := len(s) - w
	var zero T
	for i := w; i < len(s); i++ {
		s[i] = zero
	}
	return s[:w], removed, nil
}
