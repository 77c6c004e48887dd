package namegen

import "math/rand/v2"

// Rand is the randomness capability every selection step draws from
// *rand.Rand from math/rand/v2 satisfies it; it is not safe for concurrent use
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// pcgStream decorrelates the second PCG word from the seed
const pcgStream = 0x9e3779b97f4a7c15

// Seeded returns a deterministic source for reproducible draws
func Seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// Global is backed by the math/rand/v2 top-level source and is safe for
// concurrent use, so one value can be shared by every request
var Global Rand = globalRand{}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Float64() float64                   { return rand.Float64() }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
