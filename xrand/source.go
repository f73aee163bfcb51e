// Package xrand provides math/rand source implementations used by the
// shuffle and sampling helpers: a source backed by the system CSPRNG and a
// seeded source that is safe for concurrent use.
package xrand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand"
	"sync"
)

// CryptoSource is a rand.Source64 drawing from crypto/rand. The zero value
// is ready to use and safe for concurrent callers. It panics if the system
// CSPRNG fails: there is no way to continue shuffling without entropy.
type CryptoSource struct{}

var _ mathrand.Source64 = CryptoSource{}

// Seed is a no-op, the system CSPRNG cannot be seeded.
func (CryptoSource) Seed(int64) {}

func (s CryptoSource) Int63() int64 {
	return int64(s.Uint64() &^ (1 << 63))
}

func (CryptoSource) Uint64() uint64 {
	var v uint64
	if err := binary.Read(rand.Reader, binary.BigEndian, &v); err != nil {
		panic(fmt.Sprintf("xrand: crypto source read failed: %v", err))
	}
	return v
}

// NewLockedSource returns a seeded rand.Source64 guarded by a mutex.
// Plain rand.NewSource is not safe for concurrent use, while the
// process-wide generator cannot be reseeded deterministically.
func NewLockedSource(seed int64) mathrand.Source64 {
	return &lockedSource{src: mathrand.NewSource(seed).(mathrand.Source64)}
}

type lockedSource struct {
	mu  sync.Mutex
	src mathrand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
