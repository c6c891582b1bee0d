package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// BenchmarkFindShortestPath_Reference measures the 20×20 reference grid,
// corner to corner, with no obstacles.
func BenchmarkFindShortestPath_Reference(b *testing.B) {
	g, err := grid.New(grid.DefaultRows, grid.DefaultCols)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	goal := grid.C(grid.DefaultRows-1, grid.DefaultCols-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.FindShortestPath(g, grid.C(0, 0), goal)
	}
}

// BenchmarkFindShortestPath_Random measures a 300×300 weighted grid with
// about 20% obstacles.
// Complexity: O(V log V + E).
func BenchmarkFindShortestPath_Random(b *testing.B) {
	const n = 300
	g := randomGrid(rand.New(rand.NewSource(42)), n, n, 0.2)
	start, goal := openCorner(g, false), openCorner(g, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.FindShortestPath(g, start, goal)
	}
}
