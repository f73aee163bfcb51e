package slices

// ToSet returns a new set with every distinct element of the slice. The
// set is pre-sized to len(s) and fully independent of s: later mutation
// of either does not affect the other.
func ToSet[E comparable](s []E) map[E]struct{} {
	set := make(map[E]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// ToSetBy is ToSet under a caller-supplied notion of equality: two
// elements are equal when key yields the same value for both. The first
// element seen for a key is kept as its representative.
func ToSetBy[S ~[]T, T any, K comparable](s S, key func(T) K) map[K]T {
	set := make(map[K]T, len(s))
	for _, v := range s {
		k := key(v)
		if _, ok := set[k]; !ok {
			set[k] = v
		}
	}
	return set
}

// Uniq removes duplicate values from slice keeping first occurrences in
// their original order.
// It will alter original non-empty slice, consider copy it beforehand.
func Uniq[S ~[]E, E comparable](s S) S {
	if len(s) < 2 {
		return s
	}
	seen := make(map[E]struct{}, len(s))
	var w int
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		s[w] = v
		w++
	}
	return s[:w]
}
