package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestNew_Defaults(t *testing.T) {
	g, err := grid.New(grid.DefaultRows, grid.DefaultCols)
	require.NoError(t, err)
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 20, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			require.Equal(t, grid.DefaultCost, g.Cost(grid.C(r, c)))
		}
	}
	assert.Empty(t, g.Obstacles())
}

func TestNew_WithFill(t *testing.T) {
	g, err := grid.New(2, 3, grid.WithFill(7))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7, 7, 7}, {7, 7, 7}}, g.ToSlice())
}

func TestNew_Invalid(t *testing.T) {
	_, err := grid.New(0, 5)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New(5, -1)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New(2, 2, grid.WithFill(-3))
	assert.ErrorIs(t, err, grid.ErrNegativeCost)
}

func TestFrom2D_Validation(t *testing.T) {
	_, err := grid.From2D(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.From2D([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.From2D([][]int{{1, 1}, {1}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.From2D([][]int{{1, -1}})
	assert.ErrorIs(t, err, grid.ErrNegativeCost)
}

func TestFrom2D_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := grid.From2D(src)
	require.NoError(t, err)

	src[0][0] = 99
	assert.Equal(t, 1, g.Cost(grid.C(0, 0)), "grid must not alias its input")

	out := g.ToSlice()
	out[1][1] = 0
	assert.Equal(t, 4, g.Cost(grid.C(1, 1)), "ToSlice must return a copy")
}

func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	assert.True(t, g.InBounds(grid.C(0, 0)))
	assert.True(t, g.InBounds(grid.C(2, 3)))
	assert.False(t, g.InBounds(grid.C(-1, 0)))
	assert.False(t, g.InBounds(grid.C(0, -1)))
	assert.False(t, g.InBounds(grid.C(3, 0)))
	assert.False(t, g.InBounds(grid.C(0, 4)))
}

func TestNeighbors_OrderAndBounds(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	// interior: up, down, left, right
	assert.Equal(t,
		[]grid.Coord{grid.C(0, 1), grid.C(2, 1), grid.C(1, 0), grid.C(1, 2)},
		g.Neighbors(grid.C(1, 1)))
	// corner keeps only in-bounds cells, same relative order
	assert.Equal(t,
		[]grid.Coord{grid.C(1, 0), grid.C(0, 1)},
		g.Neighbors(grid.C(0, 0)))
	assert.Equal(t,
		[]grid.Coord{grid.C(1, 2), grid.C(2, 1)},
		g.Neighbors(grid.C(2, 2)))
}

func TestNeighbors_IncludesObstacles(t *testing.T) {
	g, err := grid.From2D([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Len(t, g.Neighbors(grid.C(0, 0)), 2)
}

func TestCoord_Less(t *testing.T) {
	assert.True(t, grid.C(0, 5).Less(grid.C(1, 0)))
	assert.True(t, grid.C(2, 1).Less(grid.C(2, 3)))
	assert.False(t, grid.C(2, 3).Less(grid.C(2, 3)))
	assert.False(t, grid.C(3, 0).Less(grid.C(2, 9)))
	assert.Equal(t, "(4,7)", grid.C(4, 7).String())
}

func TestClone_Independent(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	snap := g.Clone()

	require.NoError(t, g.ToggleObstacle(grid.C(0, 0)))
	assert.True(t, g.IsObstacle(grid.C(0, 0)))
	assert.False(t, snap.IsObstacle(grid.C(0, 0)))
}

func TestParse_RoundTrip(t *testing.T) {
	text := `
# weighted 3x3
1 1 1
1 100 1

1 0 1
`
	g, err := grid.Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1, 1}, {1, 100, 1}, {1, 0, 1}}, g.ToSlice())

	again, err := grid.Parse(strings.NewReader(g.String()))
	require.NoError(t, err)
	assert.Equal(t, g.ToSlice(), again.ToSlice())
}

func TestParse_Errors(t *testing.T) {
	_, err := grid.Parse(strings.NewReader("1 x 1\n"))
	assert.ErrorIs(t, err, grid.ErrParse)
	_, err = grid.Parse(strings.NewReader("# only a comment\n"))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Parse(strings.NewReader("1 1\n1\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}
