package poisson

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/royalcat/geoseed/region"
)

func TestGenerateCandidates(t *testing.T) {
	domain := region.FromBound(unitBound())
	rng := rand.New(rand.NewSource(1))
	center := orb.Point{0.5, 0.5}

	candidates := GenerateCandidates(domain, center, 0.1, 30, rng)
	if len(candidates) == 0 {
		t.Fatal("no candidates around an interior point")
	}

	for _, c := range candidates {
		d := planar.Distance(center, c)
		if d < 0.1 || d > 0.2 {
			t.Errorf("candidate %v at distance %v, expected within [0.1, 0.2]", c, d)
		}
		if !domain.Contains(c) {
			t.Errorf("candidate %v outside the domain", c)
		}
	}
}

func TestGenerateCandidatesClippedOut(t *testing.T) {
	// the whole domain fits inside the annulus hole, nothing can be drawn
	tiny := region.FromBound(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{0.01, 0.01}})
	rng := rand.New(rand.NewSource(1))

	candidates := GenerateCandidates(tiny, orb.Point{0.005, 0.005}, 0.1, 30, rng)
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}
