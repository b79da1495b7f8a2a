// Package poisson generates spatially uniform point sets inside arbitrary
// polygonal regions, with a guaranteed minimum distance between any two
// points. It implements Bridson's Poisson-disc sampling adapted to a polygon
// boundary: a uniform occupancy grid prunes the distance checks, an active
// list drives the frontier, and candidates are drawn from the annulus around
// active points and clipped to the domain.
package poisson

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Domain is the planar area to fill with points. region.Region implements
// it; any area supporting containment and uniform draws will do.
type Domain interface {
	Bound() orb.Bound
	Area() float64
	Contains(p orb.Point) bool
	SampleUniform(n int, rng *rand.Rand) []orb.Point
}

type Config struct {
	// K is the number of candidates generated around each active point.
	K int
	// Threads bounds the workers building the neighbor index.
	Threads int
	// Seed for the sampler's random source. Runs over the same domain with
	// the same distance, K and seed produce identical point sequences.
	Seed int64
	// MaxRounds is a safety cap on sampling rounds. 0 derives the cap from
	// the cell count, which a run can never legitimately exceed.
	MaxRounds int
}

func ConfigDefault() Config {
	return Config{
		K:       DefaultK,
		Threads: runtime.GOMAXPROCS(-1),
	}
}

type Sampler struct {
	cfg Config
	log *slog.Logger
}

func NewSampler(cfg Config, log *slog.Logger) *Sampler {
	if log == nil {
		log = slog.Default()
	}
	return &Sampler{cfg: cfg, log: log}
}

// Sample is a shorthand for a default-configured sampler run.
func Sample(domain Domain, minDist float64) ([]orb.Point, error) {
	return NewSampler(ConfigDefault(), nil).Sample(domain, minDist)
}

// run owns all mutable sampling state. The loop is inherently sequential:
// every round depends on the occupancy and frontier left by the previous
// one, so this state is never shared across goroutines.
type run struct {
	grid      *Grid
	neighbors *NeighborIndex
	rng       *rand.Rand

	// points is append-only; cells and the active list refer to points by
	// index into it.
	points []orb.Point
	active []int32
	rounds int
}

// Sample fills the domain with points pairwise at least minDist apart. The
// packing is valid but locally greedy, not maximal.
func (s *Sampler) Sample(domain Domain, minDist float64) ([]orb.Point, error) {
	if s.cfg.K <= 0 {
		return nil, fmt.Errorf("candidate count %d: %w", s.cfg.K, ErrInvalidParameter)
	}
	if minDist <= 0 || math.IsInf(minDist, 0) || math.IsNaN(minDist) {
		return nil, fmt.Errorf("min distance %v: %w", minDist, ErrInvalidParameter)
	}
	if area := domain.Area(); !(area > 0) || math.IsInf(area, 0) {
		return nil, fmt.Errorf("domain area %v: %w", area, ErrInvalidDomain)
	}

	grid, err := BuildGrid(domain.Bound(), minDist)
	if err != nil {
		return nil, err
	}

	r := &run{
		grid:      grid,
		neighbors: BuildNeighborIndex(grid, s.cfg.Threads),
		rng:       rand.New(rand.NewSource(s.cfg.Seed)),
	}

	if !r.seed(domain) {
		return nil, fmt.Errorf("no seed point found: %w", ErrInvalidDomain)
	}

	maxRounds := s.cfg.MaxRounds
	if maxRounds <= 0 {
		// Every round retires exactly one accepted point and cells hold at
		// most one point each, so rounds are bounded by the cell count.
		maxRounds = grid.Len() + 1
	}

	for len(r.active) > 0 && r.rounds < maxRounds {
		r.round(domain, minDist, s.cfg.K)
	}

	s.log.Debug("sampling finished",
		"points", len(r.points),
		"rounds", r.rounds,
		"cells", grid.Len(),
		"min_dist", minDist)

	return r.points, nil
}

// seed draws the initial point and opens the active list with it.
func (r *run) seed(domain Domain) bool {
	points := domain.SampleUniform(1, r.rng)
	if len(points) == 0 {
		return false
	}

	cell, ok := r.grid.CellAt(points[0])
	if !ok {
		return false
	}
	r.accept(points[0], cell)
	return true
}

// round picks one active point at random, tries K candidates around it and
// retires it. Candidates accepted along the way join the active list.
func (r *run) round(domain Domain, minDist float64, k int) {
	r.rounds++

	i := r.rng.Intn(len(r.active))
	from := r.points[r.active[i]]

	for _, c := range GenerateCandidates(domain, from, minDist, k, r.rng) {
		cell, ok := r.grid.CellAt(c)
		if !ok {
			continue
		}
		// One point per cell keeps the 2-ring check sound.
		if r.grid.Occupied(cell) {
			continue
		}
		if r.tooClose(c, cell, minDist) {
			continue
		}
		r.accept(c, cell)
	}

	// The selected point had its one chance to spawn children and is never
	// revisited. Appends above only grew the list, so i is still valid.
	last := len(r.active) - 1
	r.active[i] = r.active[last]
	r.active = r.active[:last]
}

// tooClose checks the candidate against accepted points in the 2-ring of its
// cell. Points anywhere else are guaranteed to be farther than minDist.
func (r *run) tooClose(c orb.Point, cell int, minDist float64) bool {
	minSq := minDist * minDist
	for _, n := range r.neighbors.Neighbors(cell) {
		pi := r.grid.PointAt(int(n))
		if pi < 0 {
			continue
		}
		if planar.DistanceSquared(r.points[pi], c) < minSq {
			return true
		}
	}
	return false
}

func (r *run) accept(p orb.Point, cell int) {
	idx := int32(len(r.points))
	r.points = append(r.points, p)
	r.grid.MarkOccupied(cell, idx)
	r.active = append(r.active, idx)
}
