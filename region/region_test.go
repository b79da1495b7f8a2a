package region

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
)

// 10x10 square with a 2x2 hole in the middle
func holedRegion() Region {
	return FromPolygon(orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
	})
}

func TestRegionContains(t *testing.T) {
	r := holedRegion()

	if !r.Contains(orb.Point{2, 2}) {
		t.Error("expected point inside the polygon to be contained")
	}
	if r.Contains(orb.Point{5, 5}) {
		t.Error("expected point in the hole to not be contained")
	}
	if r.Contains(orb.Point{11, 5}) {
		t.Error("expected point outside the bound to not be contained")
	}
}

func TestRegionArea(t *testing.T) {
	r := holedRegion()
	if area := r.Area(); math.Abs(area-96) > 1e-9 {
		t.Errorf("expected area 96, got %v", area)
	}
}

func TestRegionEmpty(t *testing.T) {
	if (Region{}).Empty() == false {
		t.Error("zero region reported non-empty")
	}
	if holedRegion().Empty() {
		t.Error("real region reported empty")
	}
	line := FromPolygon(orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}})
	if !line.Empty() {
		t.Error("zero-area region reported non-empty")
	}
}

func TestRegionClip(t *testing.T) {
	r := holedRegion()
	left := r.Clip(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 10}})

	if left.Empty() {
		t.Fatal("clipped region is empty")
	}
	if area := left.Area(); math.Abs(area-40) > 1e-9 {
		t.Errorf("expected clipped area 40, got %v", area)
	}
	if left.Contains(orb.Point{5, 5}) {
		t.Error("clipped region contains a point outside the viewport")
	}
}

func TestRegionSampleUniform(t *testing.T) {
	r := holedRegion()
	rng := rand.New(rand.NewSource(5))

	points := r.SampleUniform(200, rng)
	if len(points) != 200 {
		t.Fatalf("expected 200 points, got %d", len(points))
	}
	for _, p := range points {
		if !r.Contains(p) {
			t.Errorf("sampled point %v outside the region", p)
		}
	}
}

func TestFromGeometry(t *testing.T) {
	if _, ok := FromGeometry(orb.Point{1, 2}); ok {
		t.Error("point geometry accepted as a region")
	}
	if _, ok := FromGeometry(holedRegion().Geometry()); !ok {
		t.Error("multipolygon geometry rejected")
	}
}
