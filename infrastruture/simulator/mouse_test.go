package simulator

import (
	"testing"

	"github.com/beka-birhanu/micromouse/maze"
	"github.com/beka-birhanu/micromouse/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMouse(t *testing.T) {
	t.Run("nil maze is rejected", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNilMaze)
	})

	t.Run("senses relative to the heading", func(t *testing.T) {
		m, err := maze.NewEmpty(6, 6)
		require.NoError(t, err)
		mouse, err := New(m)
		require.NoError(t, err)

		// At (0,0) heading North: boundary on the left, open ahead and right.
		assert.False(t, mouse.WallFront())
		assert.True(t, mouse.WallLeft())
		assert.False(t, mouse.WallRight())

		mouse.TurnRight() // heading East
		assert.False(t, mouse.WallFront())
		assert.False(t, mouse.WallLeft())
		assert.True(t, mouse.WallRight())
	})

	t.Run("moves update pose and step count", func(t *testing.T) {
		m, err := maze.NewEmpty(6, 6)
		require.NoError(t, err)
		mouse, err := New(m)
		require.NoError(t, err)

		require.NoError(t, mouse.MoveForward())
		require.NoError(t, mouse.MoveForward())
		mouse.TurnRight()
		require.NoError(t, mouse.MoveForward())

		assert.Equal(t, solver.Cell{X: 1, Y: 2}, mouse.Position())
		assert.Equal(t, solver.East, mouse.Heading())
		assert.Equal(t, 3, mouse.Steps())
	})

	t.Run("driving into a wall crashes", func(t *testing.T) {
		m, err := maze.NewEmpty(6, 6)
		require.NoError(t, err)
		mouse, err := New(m)
		require.NoError(t, err)

		mouse.TurnLeft() // heading West, boundary ahead
		err = mouse.MoveForward()

		assert.ErrorIs(t, err, ErrWallCrash)
		assert.Equal(t, solver.Cell{X: 0, Y: 0}, mouse.Position())
		assert.Zero(t, mouse.Steps())
	})

	t.Run("full turn restores the heading", func(t *testing.T) {
		m, err := maze.NewEmpty(6, 6)
		require.NoError(t, err)
		mouse, err := New(m)
		require.NoError(t, err)

		for i := 0; i < 4; i++ {
			mouse.TurnRight()
		}
		assert.Equal(t, solver.North, mouse.Heading())
	})
}
