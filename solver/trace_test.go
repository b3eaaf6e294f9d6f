package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracePath(t *testing.T) {
	t.Run("trace ends on the goal in exactly the start distance", func(t *testing.T) {
		f, walls, _, dist := newEngine(5, 5)
		walls.RegisterWall(Cell{X: 1, Y: 0}, North)
		walls.RegisterWall(Cell{X: 2, Y: 1}, West)

		goal := Cell{X: 4, Y: 4}
		start := Cell{X: 0, Y: 0}
		f.Compute([]Cell{goal})

		path, err := f.TracePath(start, false)

		assert.NoError(t, err)
		assert.Len(t, path, dist.At(start))

		cur := start
		for _, d := range path {
			assert.False(t, walls.HasWall(cur, d))
			cur = cur.Neighbor(d)
		}
		assert.Equal(t, goal, cur)
	})

	t.Run("repeated traces over the same grids are identical", func(t *testing.T) {
		f, walls, _, _ := newEngine(6, 6)
		walls.RegisterWall(Cell{X: 2, Y: 2}, North)
		walls.RegisterWall(Cell{X: 3, Y: 3}, East)

		f.Compute([]Cell{{X: 5, Y: 5}})
		first, err := f.TracePath(Cell{X: 0, Y: 0}, false)
		assert.NoError(t, err)

		for i := 0; i < 5; i++ {
			f.Compute([]Cell{{X: 5, Y: 5}})
			again, err := f.TracePath(Cell{X: 0, Y: 0}, false)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("tie break prefers the canonical direction order", func(t *testing.T) {
		f, _, _, _ := newEngine(3, 3)

		// From (0,0) both North and East lead toward (1,1); North wins.
		f.Compute([]Cell{{X: 1, Y: 1}})
		path, err := f.TracePath(Cell{X: 0, Y: 0}, false)

		assert.NoError(t, err)
		assert.Equal(t, []Direction{North, East}, path)
	})

	t.Run("start on the goal yields an empty path", func(t *testing.T) {
		f, _, _, _ := newEngine(3, 3)

		f.Compute([]Cell{{X: 1, Y: 1}})
		path, err := f.TracePath(Cell{X: 1, Y: 1}, false)

		assert.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("unreachable start is stuck", func(t *testing.T) {
		f, walls, _, _ := newEngine(3, 3)
		walls.RegisterWall(Cell{X: 0, Y: 0}, North)
		walls.RegisterWall(Cell{X: 0, Y: 0}, East)

		f.Compute([]Cell{{X: 2, Y: 2}})
		_, err := f.TracePath(Cell{X: 0, Y: 0}, false)

		assert.ErrorIs(t, err, ErrTraceStuck)
	})

	t.Run("visited restriction binds the trace", func(t *testing.T) {
		f, _, visited, _ := newEngine(4, 4)
		for x := 0; x < 4; x++ {
			visited.MarkVisited(Cell{X: x, Y: 0})
		}

		f.ComputeVisited([]Cell{{X: 0, Y: 0}})
		path, err := f.TracePath(Cell{X: 3, Y: 0}, true)

		assert.NoError(t, err)
		assert.Equal(t, []Direction{West, West, West}, path)
	})
}
