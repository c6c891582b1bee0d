package pathfind

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// FindShortestPath returns a minimum-total-entry-cost path from start to goal.
//
// Cells are connected to their four orthogonal neighbors. Entering cell v
// costs g.Cost(v); obstacles are never entered. The start cell's own cost is
// not charged.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must be in bounds (ErrInvalidCoordinate).
//  3. start and goal must not be obstacles (ErrUnreachableEndpoint).
//
// If start == goal the result is the single-cell path of cost 0 and no search
// runs. If goal cannot be reached, the error is ErrNoPath. Route totals are
// never allowed to wrap: if the goal is only reachable at a cost above
// MaxInt64, the error is ErrCostOverflow.
//
// Equal-distance frontier cells are settled in row-major coordinate order, so
// the returned path is identical for identical input.
//
// The grid is only read. Complexity: O(V log V + E), V = rows×cols, E ≤ 4V.
func FindShortestPath(g *grid.Grid, start, goal grid.Coord) (Path, error) {
	return FindShortestPathContext(context.Background(), g, start, goal)
}

// FindShortestPathContext is FindShortestPath with cancellation.
// ctx is checked each time a cell is popped from the frontier; once it is
// done the search stops and ctx.Err() is returned.
func FindShortestPathContext(ctx context.Context, g *grid.Grid, start, goal grid.Coord) (Path, error) {
	if err := validate(g, start, goal); err != nil {
		return Path{}, err
	}
	if start == goal {
		return Path{Cells: []grid.Coord{start}}, nil
	}

	r := newRunner(g, start, goal)
	found, err := r.process(ctx)
	if err != nil {
		return Path{}, err
	}
	if !found {
		// Routes whose total exceeds MaxInt64 were dropped; without them
		// the goal may look disconnected when it is not.
		if r.overflowed {
			return Path{}, fmt.Errorf("%w: %v→%v", ErrCostOverflow, start, goal)
		}
		return Path{}, fmt.Errorf("%w: %v→%v", ErrNoPath, start, goal)
	}

	return Path{
		Cells:    r.reconstruct(),
		Cost:     r.dist[goal],
		Expanded: len(r.settled),
	}, nil
}

// validate checks the grid and both endpoints before any search state exists.
func validate(g *grid.Grid, start, goal grid.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v not in %dx%d grid", ErrInvalidCoordinate, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("%w: goal %v not in %dx%d grid", ErrInvalidCoordinate, goal, g.Rows(), g.Cols())
	}
	if g.IsObstacle(start) {
		return fmt.Errorf("%w: start %v", ErrUnreachableEndpoint, start)
	}
	if g.IsObstacle(goal) {
		return fmt.Errorf("%w: goal %v", ErrUnreachableEndpoint, goal)
	}
	return nil
}

// runner holds the mutable state for a single search. Nothing in it
// outlives the call that created it.
type runner struct {
	g       *grid.Grid                // read-only input
	start   grid.Coord                // search origin
	goal    grid.Coord                // early-exit target
	dist    map[grid.Coord]int64      // best-known distance from start
	prev    map[grid.Coord]grid.Coord // predecessor on the best-known path
	settled map[grid.Coord]bool       // cells whose distance is final
	pq      frontier                  // owned (coord, dist) snapshots

	overflowed bool // some relaxation exceeded MaxInt64 and was dropped
}

// newRunner seeds the frontier with start at distance 0.
func newRunner(g *grid.Grid, start, goal grid.Coord) *runner {
	v := g.Rows() * g.Cols()
	r := &runner{
		g:       g,
		start:   start,
		goal:    goal,
		dist:    make(map[grid.Coord]int64, v),
		prev:    make(map[grid.Coord]grid.Coord, v),
		settled: make(map[grid.Coord]bool, v),
		pq:      make(frontier, 0, v),
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{at: start, dist: 0})

	return r
}

// process runs the main loop until goal is settled or the frontier empties.
// It reports whether goal was reached.
func (r *runner) process(ctx context.Context) (bool, error) {
	for r.pq.Len() > 0 {
		// 1) Honour cancellation once per pop.
		if err := ctx.Err(); err != nil {
			return false, err
		}

		// 2) Pop the smallest-distance entry; ties come out in row-major order.
		item := heap.Pop(&r.pq).(entry)

		// 3) Stale entry: a shorter distance was pushed and already settled.
		if r.settled[item.at] {
			continue
		}

		// 4) item.dist is now final for item.at.
		r.settled[item.at] = true

		// 5) Early exit: nothing popped later can improve the goal.
		if item.at == r.goal {
			return true, nil
		}

		// 6) Offer every open neighbor a route through item.at.
		r.relax(item.at, item.dist)
	}
	return false, nil
}

// relax offers u's open neighbors a route through u.
// Only strict improvements are recorded, so the first predecessor found
// for a given distance is kept.
func (r *runner) relax(u grid.Coord, du int64) {
	for _, v := range r.g.Neighbors(u) {
		// 1) Settled cells are final; obstacles are not part of the graph.
		if r.settled[v] || r.g.IsObstacle(v) {
			continue
		}

		// 2) Entering v costs v's own value. Drop totals that do not fit in int64.
		w := int64(r.g.Cost(v))
		if w > math.MaxInt64-du {
			r.overflowed = true
			continue
		}
		nd := du + w

		// 3) Keep the current label unless this route is strictly shorter.
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}

		// 4) Record the improvement and push a fresh snapshot (lazy decrease-key).
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, entry{at: v, dist: nd})
	}
}

// reconstruct walks prev from goal back to start and returns start→goal order.
// Callers must only use it after goal was settled.
func (r *runner) reconstruct() []grid.Coord {
	path := []grid.Coord{r.goal}
	for at := r.goal; at != r.start; {
		at = r.prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
