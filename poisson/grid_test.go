package poisson

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func unitBound() orb.Bound {
	return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}
}

func TestBuildGrid(t *testing.T) {
	g, err := BuildGrid(unitBound(), 0.1)
	if err != nil {
		t.Fatal(err)
	}

	want := 0.1 / math.Sqrt2
	if g.CellSize() != want {
		t.Errorf("expected cell size %v, got %v", want, g.CellSize())
	}
	// ceil(1 / 0.0707..) = 15 per axis
	if g.cols != 15 || g.rows != 15 {
		t.Errorf("expected 15x15 grid, got %dx%d", g.cols, g.rows)
	}
	if g.Len() != 225 {
		t.Errorf("expected 225 cells, got %d", g.Len())
	}
}

func TestBuildGridErrors(t *testing.T) {
	for _, dist := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := BuildGrid(unitBound(), dist); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("min dist %v: expected ErrInvalidParameter, got %v", dist, err)
		}
	}

	flat := orb.Bound{Min: orb.Point{0.5, 0.5}, Max: orb.Point{0.5, 0.7}}
	if _, err := BuildGrid(flat, 0.1); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain for a zero-width bound, got %v", err)
	}
}

func TestGridCellAt(t *testing.T) {
	g, err := BuildGrid(unitBound(), 0.1)
	if err != nil {
		t.Fatal(err)
	}

	id, ok := g.CellAt(orb.Point{0, 0})
	if !ok || id != 0 {
		t.Errorf("expected cell 0 for the min corner, got %d (ok=%v)", id, ok)
	}

	// the max corner belongs to the last cell, not one past it
	id, ok = g.CellAt(orb.Point{1, 1})
	if !ok || id != g.Len()-1 {
		t.Errorf("expected cell %d for the max corner, got %d (ok=%v)", g.Len()-1, id, ok)
	}

	if _, ok := g.CellAt(orb.Point{1.01, 0.5}); ok {
		t.Error("point outside the bound got a cell")
	}

	p := orb.Point{0.53, 0.27}
	id, ok = g.CellAt(p)
	if !ok {
		t.Fatal("interior point got no cell")
	}
	if !g.CellBound(id).Contains(p) {
		t.Errorf("cell %d footprint %v does not contain %v", id, g.CellBound(id), p)
	}
}

func TestGridOccupancy(t *testing.T) {
	g, err := BuildGrid(unitBound(), 0.1)
	if err != nil {
		t.Fatal(err)
	}

	id, _ := g.CellAt(orb.Point{0.5, 0.5})
	if g.Occupied(id) {
		t.Error("fresh cell reported occupied")
	}
	if g.PointAt(id) != -1 {
		t.Errorf("fresh cell owns point %d", g.PointAt(id))
	}

	g.MarkOccupied(id, 7)
	if !g.Occupied(id) {
		t.Error("marked cell reported free")
	}
	if g.PointAt(id) != 7 {
		t.Errorf("expected point 7, got %d", g.PointAt(id))
	}
}
