package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWallMap(t *testing.T) {
	t.Run("registering a wall mirrors it on the neighbor", func(t *testing.T) {
		w := NewWallMap(4, 4)

		w.RegisterWall(Cell{X: 1, Y: 1}, North)

		assert.True(t, w.HasWall(Cell{X: 1, Y: 1}, North))
		assert.True(t, w.HasWall(Cell{X: 1, Y: 2}, South))
	})

	t.Run("registering is idempotent", func(t *testing.T) {
		w := NewWallMap(4, 4)

		w.RegisterWall(Cell{X: 2, Y: 2}, East)
		w.RegisterWall(Cell{X: 2, Y: 2}, East)
		w.RegisterWall(Cell{X: 3, Y: 2}, West)

		assert.True(t, w.HasWall(Cell{X: 2, Y: 2}, East))
		assert.True(t, w.HasWall(Cell{X: 3, Y: 2}, West))
		assert.False(t, w.HasWall(Cell{X: 2, Y: 2}, North))
	})

	t.Run("boundary wall has no mirror to write", func(t *testing.T) {
		w := NewWallMap(4, 4)

		w.RegisterWall(Cell{X: 0, Y: 0}, South)
		w.RegisterWall(Cell{X: 0, Y: 0}, West)

		assert.True(t, w.HasWall(Cell{X: 0, Y: 0}, South))
		assert.True(t, w.HasWall(Cell{X: 0, Y: 0}, West))
	})

	t.Run("out of bounds cells read as fully walled", func(t *testing.T) {
		w := NewWallMap(4, 4)

		assert.True(t, w.HasWall(Cell{X: -1, Y: 0}, North))
		assert.True(t, w.HasWall(Cell{X: 4, Y: 4}, South))
	})

	t.Run("new map is wall free inside bounds", func(t *testing.T) {
		w := NewWallMap(3, 3)

		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				for _, d := range Directions {
					assert.False(t, w.HasWall(Cell{X: x, Y: y}, d))
				}
			}
		}
	})
}
