package region

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func TestAnnulusContains(t *testing.T) {
	a := Annulus{Center: orb.Point{0, 0}, Inner: 1, Outer: 2}

	if a.Contains(orb.Point{0.5, 0}) {
		t.Error("point inside the hole reported contained")
	}
	if !a.Contains(orb.Point{1.5, 0}) {
		t.Error("point in the ring reported not contained")
	}
	if a.Contains(orb.Point{2.5, 0}) {
		t.Error("point past the outer radius reported contained")
	}
	// both radii are part of the annulus
	if !a.Contains(orb.Point{1, 0}) || !a.Contains(orb.Point{0, 2}) {
		t.Error("boundary points reported not contained")
	}
}

func TestAnnulusBoundArea(t *testing.T) {
	a := Annulus{Center: orb.Point{3, -1}, Inner: 1, Outer: 2}

	wantBound := orb.Bound{Min: orb.Point{1, -3}, Max: orb.Point{5, 1}}
	if a.Bound() != wantBound {
		t.Errorf("expected bound %v, got %v", wantBound, a.Bound())
	}
	if area := a.Area(); math.Abs(area-3*math.Pi) > 1e-9 {
		t.Errorf("expected area 3*pi, got %v", area)
	}
}

func TestAnnulusSampleUniform(t *testing.T) {
	a := Annulus{Center: orb.Point{2, 2}, Inner: 0.1, Outer: 0.2}
	rng := rand.New(rand.NewSource(11))

	points := a.SampleUniform(500, rng)
	if len(points) != 500 {
		t.Fatalf("expected 500 points, got %d", len(points))
	}
	for _, p := range points {
		d := planar.Distance(a.Center, p)
		if d < a.Inner || d > a.Outer {
			t.Fatalf("point %v at radius %v, expected within [%v, %v]", p, d, a.Inner, a.Outer)
		}
	}
}
