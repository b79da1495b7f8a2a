package poisson

import (
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/royalcat/geoseed/region"
)

// DefaultK is the number of candidates tried around each active point before
// the point is retired, the value suggested by Bridson.
const DefaultK = 30

// GenerateCandidates draws up to k points uniform by area from the annulus
// between minDist and 2*minDist around center, keeping only those inside the
// domain. An empty result is the normal outcome for points near the domain
// boundary, not an error.
func GenerateCandidates(domain Domain, center orb.Point, minDist float64, k int, rng *rand.Rand) []orb.Point {
	annulus := region.Annulus{Center: center, Inner: minDist, Outer: 2 * minDist}

	candidates := make([]orb.Point, 0, k)
	for _, p := range annulus.SampleUniform(k, rng) {
		if domain.Contains(p) {
			candidates = append(candidates, p)
		}
	}
	return candidates
}
