package pathfind

import "github.com/katalvlaran/gridpath/grid"

// entry is a snapshot of a cell and the distance it had when pushed.
// Improvements push a new entry instead of editing an old one, so the heap
// never aliases the distance table.
type entry struct {
	at   grid.Coord
	dist int64
}

// frontier is a min-heap of entries ordered by dist, then by row-major
// coordinate order for equal distances.
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by distance, breaking ties with grid.Coord.Less.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].at.Less(f[j].at)
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

// Pop removes the last entry; called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
