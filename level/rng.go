package level

import "math/rand"

// defaultRNGSeed replaces a zero Config.Seed so that "no seed" still means a
// reproducible level.
const defaultRNGSeed int64 = 1

// rngFromSeed returns the loop-edge source for seed. Same seed, same loops,
// on every platform. The result is not safe for concurrent use.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
