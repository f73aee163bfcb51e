package slices

import "math/rand"

// Pick returns a uniformly chosen element of the slice using given or
// pseudo-random source. It returns the zero value of E for nil and empty
// slices and the only element of a single-element slice without drawing
// any randomness.
func Pick[S ~[]E, E any](a S, src rand.Source) E {
	switch len(a) {
	case 0:
		var zero E
		return zero
	case 1:
		return a[0]
	}
	return a[intn(src)(len(a))]
}

func intn(src rand.Source) func(n int) int {
	if src != nil {
		return rand.New(src).Intn
	}
	return rand.Intn
}
