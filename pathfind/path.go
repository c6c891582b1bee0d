package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p.Cells) }

// Edges returns the number of moves, Len()-1 for a non-empty path.
func (p Path) Edges() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells) - 1
}

// Start returns the first cell. It panics on an empty Path.
func (p Path) Start() grid.Coord { return p.Cells[0] }

// Goal returns the last cell. It panics on an empty Path.
func (p Path) Goal() grid.Coord { return p.Cells[len(p.Cells)-1] }

// Replay returns an iterator that yields the path one cell per call, from
// start to goal, then reports false forever. Each call to Replay starts
// an independent iterator.
func (p Path) Replay() func() (grid.Coord, bool) {
	cells := p.Cells
	i := 0
	return func() (grid.Coord, bool) {
		if i >= len(cells) {
			return grid.Coord{}, false
		}
		c := cells[i]
		i++
		return c, true
	}
}

// Validate checks that p is still a walk over open cells of g with
// orthogonal steps and that p.Cost matches the entry costs along it.
// A grid edited after the search can invalidate a previously found path.
func (p Path) Validate(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(p.Cells) == 0 {
		return fmt.Errorf("%w: empty", ErrBrokenPath)
	}
	var sum int64
	for i, c := range p.Cells {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: cell %d %v out of bounds", ErrBrokenPath, i, c)
		}
		if g.IsObstacle(c) {
			return fmt.Errorf("%w: cell %d %v is an obstacle", ErrBrokenPath, i, c)
		}
		if i == 0 {
			continue
		}
		if !adjacent(p.Cells[i-1], c) {
			return fmt.Errorf("%w: %v→%v not orthogonal", ErrBrokenPath, p.Cells[i-1], c)
		}
		w := int64(g.Cost(c))
		if w > math.MaxInt64-sum {
			return fmt.Errorf("%w: %w at cell %d %v", ErrBrokenPath, ErrCostOverflow, i, c)
		}
		sum += w
	}
	if sum != p.Cost {
		return fmt.Errorf("%w: cost %d, cells sum to %d", ErrBrokenPath, p.Cost, sum)
	}
	return nil
}

// adjacent reports whether a and b differ by one step up, down, left or right.
func adjacent(a, b grid.Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
