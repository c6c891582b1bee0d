package pathfind

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindShortestPath and Path.Validate.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrInvalidCoordinate indicates that start or goal lies outside the grid.
	// It is a caller bug and is reported before any search.
	ErrInvalidCoordinate = errors.New("pathfind: coordinate outside grid")

	// ErrUnreachableEndpoint indicates that start or goal is itself an obstacle.
	ErrUnreachableEndpoint = errors.New("pathfind: endpoint is an obstacle")

	// ErrNoPath indicates that goal is disconnected from start through open cells.
	// This is an ordinary search outcome, not a fault.
	ErrNoPath = errors.New("pathfind: no path between start and goal")

	// ErrCostOverflow indicates that every route to the goal costs more
	// than an int64 can hold.
	ErrCostOverflow = errors.New("pathfind: path cost overflows int64")

	// ErrBrokenPath indicates that a Path is not a valid walk over a grid.
	ErrBrokenPath = errors.New("pathfind: path is not valid for grid")
)

// Path is a successful search result.
//
// Cells     - start→goal inclusive, consecutive cells orthogonally adjacent.
// Cost      - sum of entry costs of every cell after the start.
// Expanded  - number of cells settled by the search (0 when start == goal).
//
// A Path shares no memory with the grid it was computed on.
type Path struct {
	Cells    []grid.Coord
	Cost     int64
	Expanded int
}
