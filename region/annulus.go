package region

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Annulus is the ring between two radii around a center point. The sampler
// draws its candidates from the annulus [minDist, 2*minDist] around each
// active point.
type Annulus struct {
	Center orb.Point
	Inner  float64
	Outer  float64
}

func (a Annulus) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{a.Center.X() - a.Outer, a.Center.Y() - a.Outer},
		Max: orb.Point{a.Center.X() + a.Outer, a.Center.Y() + a.Outer},
	}
}

func (a Annulus) Area() float64 {
	return math.Pi * (a.Outer*a.Outer - a.Inner*a.Inner)
}

func (a Annulus) Contains(p orb.Point) bool {
	d2 := planar.DistanceSquared(a.Center, p)
	return d2 >= a.Inner*a.Inner && d2 <= a.Outer*a.Outer
}

// SampleUniform draws n points uniform by area. The radius is drawn from
// sqrt(u*(R^2-r^2)+r^2), not uniformly, otherwise points would crowd the
// inner edge.
func (a Annulus) SampleUniform(n int, rng *rand.Rand) []orb.Point {
	if n <= 0 || a.Outer <= a.Inner {
		return nil
	}

	r2, R2 := a.Inner*a.Inner, a.Outer*a.Outer
	points := make([]orb.Point, n)
	for i := range points {
		radius := math.Sqrt(r2 + rng.Float64()*(R2-r2))
		angle := rng.Float64() * 2 * math.Pi
		points[i] = orb.Point{
			a.Center.X() + radius*math.Cos(angle),
			a.Center.Y() + radius*math.Sin(angle),
		}
	}
	return points
}
