// Package randutil centralises how random number generators are built so
// that shuffles can be made reproducible from a single seed.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Source is the subset of *rand.Rand the shuffler needs.
type Source interface {
	IntN(n int) int
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the seed so that nearby seeds still produce
// unrelated sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Global returns a Source backed by the process-wide math/rand/v2
// generator, which is seeded randomly at startup.
func Global() Source {
	return global{}
}

// FromSeed returns New(seed) when seed is non-zero and Global otherwise.
// Zero is treated as "not set" by the command line flags.
func FromSeed(seed int64) Source {
	if seed == 0 {
		return Global()
	}
	return New(seed)
}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
