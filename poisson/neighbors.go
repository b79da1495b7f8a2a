package poisson

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// NeighborIndex maps every grid cell to the cells a conflicting point could
// occupy: the directly adjacent cells plus the cells adjacent to those, self
// excluded. Cells outside this 2-ring are more than minDist away from every
// point of the cell, so distance checks never need to look past it.
//
// The index is built once before sampling and is read-only afterwards.
type NeighborIndex struct {
	cells [][]int32
}

// BuildNeighborIndex computes the 2-ring for every cell of the grid. Each
// cell's ring is independent of the others, so the rows are spread over a
// worker pool. threads <= 0 means GOMAXPROCS.
func BuildNeighborIndex(g *Grid, threads int) *NeighborIndex {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	cells := make([][]int32, g.Len())
	workers := pool.New().WithMaxGoroutines(threads)
	for row := 0; row < g.rows; row++ {
		row := row
		workers.Go(func() {
			for col := 0; col < g.cols; col++ {
				id := row*g.cols + col
				cells[id] = neighborsOf(g, col, row)
			}
		})
	}
	workers.Wait()

	return &NeighborIndex{cells: cells}
}

// Neighbors returns the 2-ring of a cell. The returned slice is shared and
// must not be mutated.
func (ni *NeighborIndex) Neighbors(id int) []int32 {
	return ni.cells[id]
}

func (ni *NeighborIndex) Len() int {
	return len(ni.cells)
}

// Two cell footprints touch or overlap exactly when their column and row
// indexes differ by at most one, so adjacency reduces to index arithmetic.
func directNeighbors(g *Grid, col, row int, visit func(col, row int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc, nr := col+dc, row+dr
			if nc < 0 || nc >= g.cols || nr < 0 || nr >= g.rows {
				continue
			}
			visit(nc, nr)
		}
	}
}

func neighborsOf(g *Grid, col, row int) []int32 {
	self := int32(row*g.cols + col)
	out := make([]int32, 0, 24)
	seen := map[int32]struct{}{self: {}}

	add := func(nc, nr int) {
		id := int32(nr*g.cols + nc)
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	type cell struct{ col, row int }
	direct := make([]cell, 0, 8)
	directNeighbors(g, col, row, func(nc, nr int) {
		direct = append(direct, cell{nc, nr})
		add(nc, nr)
	})
	for _, d := range direct {
		directNeighbors(g, d.col, d.row, add)
	}
	return out
}
