package region

import (
	"github.com/fogleman/poissondisc"
	"github.com/paulmach/orb"
)

// FillBound covers the region's bounding box with a Poisson-disc point set
// and keeps the points that fall inside the region. This is the fast path
// for bulky regions: the spacing guarantee holds, but the distribution near
// the boundary is that of the unclipped box, so thin regions come out
// sparser than with the polygon-aware sampler.
func FillBound(r Region, dist float64, k int) []orb.Point {
	b := r.Bound()
	points := poissondisc.Sample(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y(), dist, k, nil)

	inside := make([]orb.Point, 0, len(points))
	for _, p := range points {
		point := orb.Point{p.X, p.Y}
		if r.Contains(point) {
			inside = append(inside, point)
		}
	}
	return inside
}
