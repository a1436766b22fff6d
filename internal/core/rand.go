// Package core provides the random source and name generator used to build trees.
package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source draws uniform integers. It is the only randomness the generator uses,
// so a seeded Source makes a whole run reproducible.
type Source interface {
	// IntRange returns a uniform integer in the inclusive range [lo, hi].
	IntRange(lo, hi int) int
}

// RandSource is a Source backed by math/rand. Not safe for concurrent use.
type RandSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

// NewRandomSource returns a Source seeded from crypto/rand.
// If the system entropy pool cannot be read, the wall clock is used instead.
func NewRandomSource() *RandSource {
	var b [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return NewSource(seed)
}

// IntRange returns a uniform integer in [lo, hi]. Panics if hi < lo.
func (s *RandSource) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("core: invalid range [%d, %d]", lo, hi))
	}
	return lo + s.r.Intn(hi-lo+1)
}
