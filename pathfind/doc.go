// Package pathfind computes minimum-cost paths between two cells of a
// grid.Grid using Dijkstra's algorithm.
//
// Overview:
//
//   - Nodes are grid cells; each cell links to its four orthogonal neighbors.
//   - Entering a cell costs that cell's value, so a cell's cost applies to
//     every path that enters it regardless of direction.
//   - Obstacle cells (cost 0) are left out of the graph entirely.
//   - The search stops as soon as the goal is settled.
//
// Determinism:
//
//   - The frontier orders equal distances by row-major coordinate order and
//     neighbors are relaxed up, down, left, right. Identical inputs always
//     return identical paths.
//
// Performance and complexity:
//
//   - Time:  O(V log V + E), V = rows×cols, E ≤ 4V.
//   - Space: O(V) for distance and predecessor maps, plus lazy heap entries.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilGrid:             grid pointer is nil.
//   - ErrInvalidCoordinate:   start or goal outside the grid.
//   - ErrUnreachableEndpoint: start or goal is an obstacle.
//   - ErrNoPath:              goal is walled off from start. Callers should treat
//     this as "no route" rather than a failure.
//   - ErrCostOverflow:        every route to the goal sums past MaxInt64.
//   - ErrBrokenPath:          Path.Validate found a step that no longer holds.
//
// Thread safety:
//
//   - A search only reads the grid and keeps no state between calls, so
//     concurrent searches over a grid nobody is editing are safe.
//   - Editing the grid during a search is a data race; search a grid.Clone
//     if edits must continue.
//
// Replay:
//
//   - Path.Replay yields the path one cell at a time so a display can reveal
//     it at its own pace.
package pathfind
