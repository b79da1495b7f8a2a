package poisson

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Grid partitions a bounding box into square cells of side minDist/sqrt(2).
// With that sizing the diagonal of a cell is exactly minDist, so a cell can
// never hold two points of a valid packing, and any two points more than two
// cells apart are always farther than minDist from each other. That is what
// lets the sampler check candidates against a small fixed neighborhood
// instead of every accepted point.
//
// Cell geometry is fixed at build time; only the occupancy state mutates,
// and each cell flips to occupied at most once per run.
type Grid struct {
	bound    orb.Bound
	cellSize float64
	cols     int
	rows     int

	// pointAt[cell] is the index of the accepted point owning the cell,
	// -1 while the cell is free.
	pointAt []int32
}

// BuildGrid lays a cell grid over bound. The bound must have positive width
// and height and minDist must be positive and finite.
func BuildGrid(bound orb.Bound, minDist float64) (*Grid, error) {
	if minDist <= 0 || math.IsInf(minDist, 0) || math.IsNaN(minDist) {
		return nil, fmt.Errorf("min distance %v: %w", minDist, ErrInvalidParameter)
	}

	width := bound.Max.X() - bound.Min.X()
	height := bound.Max.Y() - bound.Min.Y()
	if width <= 0 || height <= 0 || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("degenerate bound %v: %w", bound, ErrInvalidDomain)
	}

	cellSize := minDist / math.Sqrt2
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))

	g := &Grid{
		bound:    bound,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		pointAt:  make([]int32, cols*rows),
	}
	for i := range g.pointAt {
		g.pointAt[i] = -1
	}
	return g, nil
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return g.cols * g.rows
}

func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// CellAt returns the id of the cell containing p, or false when p lies
// outside the grid bound. Points on the max edges belong to the last cell.
func (g *Grid) CellAt(p orb.Point) (int, bool) {
	if !g.bound.Contains(p) {
		return 0, false
	}

	col := int((p.X() - g.bound.Min.X()) / g.cellSize)
	row := int((p.Y() - g.bound.Min.Y()) / g.cellSize)
	if col >= g.cols {
		col = g.cols - 1
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return row*g.cols + col, true
}

// CellBound returns the geometric footprint of a cell. The last column and
// row are clamped to the grid bound.
func (g *Grid) CellBound(id int) orb.Bound {
	col := id % g.cols
	row := id / g.cols

	min := orb.Point{
		g.bound.Min.X() + float64(col)*g.cellSize,
		g.bound.Min.Y() + float64(row)*g.cellSize,
	}
	max := orb.Point{
		math.Min(min.X()+g.cellSize, g.bound.Max.X()),
		math.Min(min.Y()+g.cellSize, g.bound.Max.Y()),
	}
	return orb.Bound{Min: min, Max: max}
}

// MarkOccupied assigns an accepted point to a cell.
func (g *Grid) MarkOccupied(id int, point int32) {
	g.pointAt[id] = point
}

func (g *Grid) Occupied(id int) bool {
	return g.pointAt[id] >= 0
}

// PointAt returns the index of the point owning the cell, -1 when free.
func (g *Grid) PointAt(id int) int32 {
	return g.pointAt[id]
}
