// Package grid provides the data model searched by package pathfind: a
// fixed-size rectangular matrix of per-cell entry costs.
//
// What:
//
//   - Grid stores Rows×Cols non-negative integer costs, row-major.
//   - A cost of Obstacle (0) makes the cell impassable.
//   - Any positive cost is charged when a path enters the cell.
//   - Neighbors enumerates the four orthogonal cells (up, down, left, right).
//
// Editing:
//
//   - SetCost, ToggleObstacle and Fill mutate cells between searches.
//   - Clone takes an independent snapshot, so a caller may keep editing while
//     a previous result is still being replayed.
//   - A Grid is not safe for concurrent use; edits must not overlap a search.
//
// Text format (Parse / String):
//
//	# 3×3, center blocked
//	1 1 1
//	1 0 1
//	1 1 1
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNegativeCost: a cost below zero.
//   - ErrOutOfBounds: edit outside the grid.
//   - ErrParse: unreadable grid text.
package grid
