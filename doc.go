// Package gridpath finds minimum-cost routes across a grid of cells.
//
// A grid holds a non-negative entry cost per cell; 0 marks an obstacle.
// One search returns the cheapest route between two cells as an ordered
// list of cells that a display can replay step by step.
//
// Under the hood, everything is organized under a few subpackages:
//
//	grid/         - Grid and Coord types, neighbor enumeration, editing, text format
//	pathfind/     - Dijkstra search (FindShortestPath), Path result, sentinel errors
//	config/       - GRIDPATH_* defaults from the environment and .env files
//	cmd/gridpath/ - command that runs one search and prints the route
//
// Quick example:
//
//	g, _ := grid.New(5, 5)
//	_ = g.ToggleObstacle(grid.C(2, 2))
//	p, err := pathfind.FindShortestPath(g, grid.C(0, 0), grid.C(4, 4))
//	if errors.Is(err, pathfind.ErrNoPath) {
//	    // nothing to animate
//	}
//	next := p.Replay()
//	for c, ok := next(); ok; c, ok = next() {
//	    // reveal c
//	}
package gridpath
