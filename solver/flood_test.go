package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newEngine(width, height int) (*FloodFill, *WallMap, *VisitGrid, *DistanceGrid) {
	walls := NewWallMap(width, height)
	visited := NewVisitGrid(width, height)
	dist := NewDistanceGrid(width, height)
	return NewFloodFill(walls, visited, dist), walls, visited, dist
}

func TestFloodFill(t *testing.T) {
	t.Run("open grid distances are manhattan to the goal", func(t *testing.T) {
		f, _, _, dist := newEngine(5, 5)

		f.Compute([]Cell{{X: 2, Y: 2}})

		assert.Equal(t, 0, dist.At(Cell{X: 2, Y: 2}))
		assert.Equal(t, 4, dist.At(Cell{X: 0, Y: 0}))
		assert.Equal(t, 2, dist.At(Cell{X: 2, Y: 4}))
		assert.Equal(t, 4, dist.At(Cell{X: 4, Y: 4}))
	})

	t.Run("walls lengthen the route", func(t *testing.T) {
		f, walls, _, dist := newEngine(3, 3)

		// Wall off (1,1) from the south so (1,0) must detour.
		walls.RegisterWall(Cell{X: 1, Y: 1}, South)

		f.Compute([]Cell{{X: 1, Y: 1}})

		assert.Equal(t, 1, dist.At(Cell{X: 0, Y: 1}))
		assert.Equal(t, 3, dist.At(Cell{X: 1, Y: 0}))
	})

	t.Run("sealed region reads unreachable", func(t *testing.T) {
		f, walls, _, dist := newEngine(3, 3)

		walls.RegisterWall(Cell{X: 0, Y: 0}, North)
		walls.RegisterWall(Cell{X: 0, Y: 0}, East)

		f.Compute([]Cell{{X: 2, Y: 2}})

		assert.Equal(t, Unreachable, dist.At(Cell{X: 0, Y: 0}))
		assert.NotEqual(t, Unreachable, dist.At(Cell{X: 1, Y: 0}))
	})

	t.Run("multiple goals take the nearest seed", func(t *testing.T) {
		f, _, _, dist := newEngine(6, 6)

		f.Compute([]Cell{{X: 0, Y: 5}, {X: 5, Y: 0}})

		assert.Equal(t, 0, dist.At(Cell{X: 0, Y: 5}))
		assert.Equal(t, 0, dist.At(Cell{X: 5, Y: 0}))
		assert.Equal(t, 4, dist.At(Cell{X: 1, Y: 0}))
	})

	t.Run("seed order does not change the result", func(t *testing.T) {
		f1, _, _, dist1 := newEngine(6, 6)
		f2, _, _, dist2 := newEngine(6, 6)

		f1.Compute([]Cell{{X: 0, Y: 5}, {X: 5, Y: 0}})
		f2.Compute([]Cell{{X: 5, Y: 0}, {X: 0, Y: 5}})

		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				c := Cell{X: x, Y: y}
				assert.Equal(t, dist1.At(c), dist2.At(c))
			}
		}
	})

	t.Run("restricted fill stays inside visited cells", func(t *testing.T) {
		f, _, visited, dist := newEngine(4, 4)

		// Visited corridor along the south edge.
		for x := 0; x < 4; x++ {
			visited.MarkVisited(Cell{X: x, Y: 0})
		}

		f.ComputeVisited([]Cell{{X: 0, Y: 0}})

		assert.Equal(t, 3, dist.At(Cell{X: 3, Y: 0}))
		assert.Equal(t, Unreachable, dist.At(Cell{X: 0, Y: 1}))
	})

	t.Run("restricted fill skips unvisited seeds", func(t *testing.T) {
		f, _, visited, dist := newEngine(4, 4)

		visited.MarkVisited(Cell{X: 0, Y: 0})

		f.ComputeVisited([]Cell{{X: 3, Y: 3}, {X: 0, Y: 0}})

		assert.Equal(t, Unreachable, dist.At(Cell{X: 3, Y: 3}))
		assert.Equal(t, 0, dist.At(Cell{X: 0, Y: 0}))
	})

	t.Run("recompute resets stale distances", func(t *testing.T) {
		f, _, _, dist := newEngine(3, 3)

		f.Compute([]Cell{{X: 0, Y: 0}})
		f.Compute([]Cell{{X: 2, Y: 2}})

		assert.Equal(t, 0, dist.At(Cell{X: 2, Y: 2}))
		assert.Equal(t, 4, dist.At(Cell{X: 0, Y: 0}))
	})

	t.Run("out of bounds goals are ignored", func(t *testing.T) {
		f, _, _, dist := newEngine(3, 3)

		f.Compute([]Cell{{X: -1, Y: 0}, {X: 1, Y: 1}})

		assert.Equal(t, 0, dist.At(Cell{X: 1, Y: 1}))
	})
}
