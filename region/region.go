package region

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
)

// Region is a planar polygonal area. Coordinates are expected to already be
// in a projected (planar) coordinate system; geographic input should be
// projected before sampling, and distances are in the units of that system.
type Region struct {
	geom  orb.MultiPolygon
	bound orb.Bound
}

func FromMultiPolygon(mp orb.MultiPolygon) Region {
	return Region{geom: mp, bound: mp.Bound()}
}

func FromPolygon(p orb.Polygon) Region {
	return FromMultiPolygon(orb.MultiPolygon{p})
}

// FromBound builds a rectangular region covering b.
func FromBound(b orb.Bound) Region {
	return FromPolygon(orb.Polygon{b.ToRing()})
}

// FromGeometry accepts the polygonal geometry types, reporting false for
// everything else.
func FromGeometry(g orb.Geometry) (Region, bool) {
	switch g := g.(type) {
	case orb.Polygon:
		return FromPolygon(g), true
	case orb.MultiPolygon:
		return FromMultiPolygon(g), true
	case orb.Bound:
		return FromBound(g), true
	}
	return Region{}, false
}

func (r Region) Geometry() orb.MultiPolygon {
	return r.geom
}

func (r Region) Bound() orb.Bound {
	return r.bound
}

func (r Region) Area() float64 {
	return planar.Area(r.geom)
}

func (r Region) Contains(p orb.Point) bool {
	if !r.bound.Contains(p) {
		return false
	}
	return planar.MultiPolygonContains(r.geom, p)
}

// Empty reports whether the region has no usable area to sample from.
func (r Region) Empty() bool {
	area := r.Area()
	return len(r.geom) == 0 || area <= 0 || math.IsInf(area, 0) || math.IsNaN(area)
}

// Clip cuts the region down to the part inside b.
func (r Region) Clip(b orb.Bound) Region {
	clipped := clip.Geometry(b, r.geom.Clone())
	if clipped == nil {
		return Region{}
	}
	reg, ok := FromGeometry(clipped)
	if !ok {
		return Region{}
	}
	return reg
}

// Attempts per requested point before SampleUniform gives up. Only extremely
// sliver-shaped polygons ever get near this.
const sampleAttempts = 4096

// SampleUniform draws up to n uniformly distributed points from the region
// by rejection over its bounding box. Fewer than n points are returned only
// when the region's area is a vanishing fraction of its bound.
func (r Region) SampleUniform(n int, rng *rand.Rand) []orb.Point {
	w := r.bound.Max.X() - r.bound.Min.X()
	h := r.bound.Max.Y() - r.bound.Min.Y()
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}

	points := make([]orb.Point, 0, n)
	for i := 0; i < n; i++ {
		for attempt := 0; attempt < sampleAttempts; attempt++ {
			p := orb.Point{
				r.bound.Min.X() + rng.Float64()*w,
				r.bound.Min.Y() + rng.Float64()*h,
			}
			if r.Contains(p) {
				points = append(points, p)
				break
			}
		}
	}
	return points
}
