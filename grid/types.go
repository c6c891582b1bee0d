package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrParse indicates malformed grid text.
	ErrParse = errors.New("grid: malformed grid text")
)

// Obstacle is the cell cost that marks an impassable cell.
const Obstacle = 0

// DefaultCost is the cost of an open cell in a freshly built grid,
// and the cost an obstacle reverts to when toggled open.
const DefaultCost = 1

// Default dimensions of the reference grid.
const (
	DefaultRows = 20
	DefaultCols = 20
)

// Coord identifies one cell by row and column.
// It is a comparable value type and may be used as a map key.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Less reports whether c sorts before o in row-major lexicographic order.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Fill is the cost every cell starts with.
	Fill int
}

// Option is a functional option for New.
type Option func(*Options)

// WithFill sets the initial cost of every cell.
// A negative fill makes New return ErrNegativeCost.
func WithFill(cost int) Option {
	return func(o *Options) {
		o.Fill = cost
	}
}

// DefaultOptions returns Options with Fill=DefaultCost.
func DefaultOptions() Options {
	return Options{Fill: DefaultCost}
}

// Grid is a fixed-size rectangular matrix of non-negative entry costs.
// A cost of Obstacle (0) marks an impassable cell.
//
// Dimensions never change after construction. Cell costs may be edited
// between searches; a Grid must not be edited while a search reads it.
type Grid struct {
	rows, cols int
	cells      []int // row-major, len == rows*cols
}
