// Package randutil centralises how random sources are derived from seeds so
// that every consumer gets reproducible sequences from the same int64.
package randutil

import rand "math/rand/v2"

const golden64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; both are derived from the one input
// through a bit mixer so that nearby seeds give unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+golden64)))
}

// Derive returns the seed for the nth independent sub-stream of a base seed.
// Used to give every hand in a batch its own random source while keeping the
// whole batch reproducible from one seed.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n+1)*golden64))
}

// splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
