// Package casegen draws random knapsack and TSP instances.
//
// Every generator takes an explicit *rand.Rand; nothing reads a global or
// time-based source. NewRand is the single RNG factory:
//
//   - seed != 0 ⇒ rand.New(rand.NewSource(seed)), fully reproducible.
//   - seed == 0 ⇒ a fresh non-zero seed is drawn from frand and returned so
//     the caller can log it and replay the run.
//
// math/rand.Rand is not goroutine-safe. Use Stream to derive one RNG per
// worker or per case.
package casegen

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// NewRand returns a deterministic RNG and the seed it was built from.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = int64(frand.Uint64n(math.MaxInt64-1)) + 1
		log.Debug().Int64("seed", seed).Msg("drew-random-seed")
	}

	return rand.New(rand.NewSource(seed)), seed
}

// Stream derives the i-th independent RNG from seed. The same (seed, i)
// pair always yields the same stream.
func Stream(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(mix(seed, uint64(i))))
}

// mix is a SplitMix64 finalizer over (parent, stream).
func mix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
