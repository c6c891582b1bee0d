package grid

import "fmt"

// orthogonal lists neighbor offsets in the fixed order up, down, left, right.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New builds a rows×cols grid with every cell set to the fill cost
// (DefaultCost unless overridden by WithFill).
// Returns ErrEmptyGrid if either dimension is not positive and
// ErrNegativeCost if the fill is negative.
// Complexity: O(rows×cols).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}
	if err := g.Fill(cfg.Fill); err != nil {
		return nil, err
	}

	return g, nil
}

// From2D builds a Grid from a non-empty, rectangular matrix indexed
// values[row][col]. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCost.
// Complexity: O(rows×cols).
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	g := &Grid{rows: rows, cols: cols, cells: make([]int, 0, rows*cols)}
	for r, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %v=%d", ErrNegativeCost, C(r, c), v)
			}
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cost returns the entry cost of c. c must be in bounds.
func (g *Grid) Cost(c Coord) int {
	return g.cells[g.index(c)]
}

// IsObstacle reports whether c is impassable. c must be in bounds.
func (g *Grid) IsObstacle(c Coord) bool {
	return g.cells[g.index(c)] == Obstacle
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Obstacles are included.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(orthogonal))
	for _, d := range orthogonal {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns an independent copy of g.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// ToSlice returns the costs as a fresh [row][col] matrix.
func (g *Grid) ToSlice() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// index converts c to its row-major offset.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}
