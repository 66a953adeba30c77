// Package mc - RNG utilities.
//
// Goals:
//   - Determinism on request: same seed ⇒ identical draws.
//   - A process-wide default stream when no seed is given.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A *rand.Rand passed via WithRand
//     must not be shared across concurrent Integrate calls. The default
//     source is the goroutine-safe top-level math/rand stream.
package mc

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass WithSeed(0).
const defaultRNGSeed int64 = 1

// Source yields uniform variates in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-wide math/rand stream.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer). Use it to give concurrent jobs independent streams.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
