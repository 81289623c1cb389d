package animation

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed uint64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible scenes.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "spawn"), seedWord(seed, "drift")))
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// between returns a uniform value in [lo, hi).
func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
