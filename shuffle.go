package slices

import (
	"math/rand"

	"github.com/clayscope/slices/xrand"
)

// Shuffle shuffles values in slice using given or pseudo-random source.
// A nil src falls back to the process-wide generator, which is safe for
// concurrent callers.
// It will alter original non-empty slice, consider copy it beforehand.
func Shuffle[S ~[]E, E any](a S, src rand.Source) S {
	if len(a) < 2 {
		return a
	}
	shuffle(src)(len(a), func(i, j int) {
		a[i], a[j] = a[j], a[i]
	})
	return a
}

// SecureShuffle shuffles values in slice drawing indices from the system
// CSPRNG. Use it when the resulting order must resist adversarial
// prediction; it is considerably slower than Shuffle.
// It will alter original non-empty slice, consider copy it beforehand.
func SecureShuffle[S ~[]E, E any](a S) S {
	if len(a) < 2 {
		return a
	}
	rand.New(xrand.CryptoSource{}).Shuffle(len(a), func(i, j int) {
		a[i], a[j] = a[j], a[i]
	})
	return a
}

func shuffle(src rand.Source) func(n int, swap func(i, j int)) {
	shuf := rand.Shuffle
	if src != nil {
		shuf = rand.New(src).Shuffle
	}
	return shuf
}
