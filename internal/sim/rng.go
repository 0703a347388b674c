// Package sim implements the deterministic ping/traceroute simulation engine.
package sim

import "time"

// RNG is a 32-bit linear congruential generator. It is deliberately tiny:
// the simulation only needs a reproducible stream of values in [0,1), and
// a fixed hand-rolled generator keeps transcripts identical across Go
// versions, unlike math/rand.
type RNG struct {
	state uint32
}

// NewRNG creates a generator starting from the given seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Float64 returns the next value in [0,1).
func (r *RNG) Float64() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / (1 << 32)
}

// IntN returns a value in [0,n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// Seed derivation constants. The hash is FNV-1a over "source|destination";
// the salt is a fixed odd constant so reproducible sessions do not depend
// on the wall clock.
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
	stableSalt     uint32 = 0x9E3779B9
)

// DeriveSeed turns a source/destination pair into the session RNG seed.
// With reproducible set, the same pair always yields the same seed and
// therefore an identical simulated transcript.
func DeriveSeed(source, destination string, reproducible bool) uint32 {
	h := fnvOffsetBasis
	for _, c := range []byte(source + "|" + destination) {
		h ^= uint32(c)
		h *= fnvPrime
	}
	if reproducible {
		return h ^ stableSalt
	}
	return h ^ uint32(time.Now().UnixNano())
}
