package generator

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// WeightedChoice picks an index in [0, len(weights)) with probability
// proportional to the weight at that index. Weights need not sum to 1.
func WeightedChoice(r *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// SampleSubset returns a subset of pool drawn without replacement, with a
// size chosen uniformly in [min, max].
func SampleSubset(r *rand.Rand, pool []string, min, max int) []string {
	n := min + r.Intn(max-min+1)
	out := make([]string, n)
	for i, j := range r.Perm(len(pool))[:n] {
		out[i] = pool[j]
	}
	return out
}

func pickString(r *rand.Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}

// randRange returns a uniform value in [lo, hi].
func randRange(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func randRange64(r *rand.Rand, lo, hi int64) int64 {
	return lo + r.Int63n(hi-lo+1)
}

// newUUID draws a v4 UUID from the generator's own random source so that a
// fixed seed reproduces identical identifiers.
func newUUID(r *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(r)).String()
}

// hexN returns n hex characters assembled from seeded UUID material, the
// same identifier texture the sampled feeds show.
func hexN(r *rand.Rand, n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(strings.ReplaceAll(newUUID(r), "-", ""))
	}
	return b.String()[:n]
}
