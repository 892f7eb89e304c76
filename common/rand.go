package common

import "math/rand"

// Rand is the random source consumed by the choreography and combat code.
// *rand.Rand satisfies it; tests substitute a queued source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed is replaced with 1.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// UniformInt draws an integer in [lo, hi). It returns lo when the range is empty.
func UniformInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
