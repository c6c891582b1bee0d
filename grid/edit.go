package grid

import "fmt"

// SetCost stores cost at c.
// Returns ErrOutOfBounds or ErrNegativeCost and leaves the grid unchanged.
func (g *Grid) SetCost(c Coord, cost int) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %v=%d", ErrNegativeCost, c, cost)
	}
	g.cells[g.index(c)] = cost
	return nil
}

// ToggleObstacle flips c between Obstacle and an open cell of DefaultCost.
// Any positive cost counts as open, so toggling a weighted cell twice
// leaves it at DefaultCost.
func (g *Grid) ToggleObstacle(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	i := g.index(c)
	if g.cells[i] == Obstacle {
		g.cells[i] = DefaultCost
	} else {
		g.cells[i] = Obstacle
	}
	return nil
}

// Fill sets every cell to cost.
// Returns ErrNegativeCost and leaves the grid unchanged if cost is negative.
func (g *Grid) Fill(cost int) error {
	if cost < 0 {
		return fmt.Errorf("%w: fill=%d", ErrNegativeCost, cost)
	}
	for i := range g.cells {
		g.cells[i] = cost
	}
	return nil
}

// Obstacles returns the coordinates of every impassable cell in row-major order.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for i, v := range g.cells {
		if v == Obstacle {
			out = append(out, Coord{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}
