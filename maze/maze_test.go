package maze

import (
	"testing"

	"github.com/beka-birhanu/micromouse/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaze(t *testing.T) {
	t.Run("dimension limits", func(t *testing.T) {
		_, err := New(4, 10)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = New(10, 34)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = New(7, 10)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = New(6, 6)
		assert.NoError(t, err)
	})

	t.Run("empty maze keeps only the boundary", func(t *testing.T) {
		m, err := NewEmpty(6, 8)
		require.NoError(t, err)

		assert.True(t, m.HasWall(0, 0, solver.South))
		assert.True(t, m.HasWall(0, 0, solver.West))
		assert.True(t, m.HasWall(5, 7, solver.North))
		assert.True(t, m.HasWall(5, 7, solver.East))
		assert.False(t, m.HasWall(0, 0, solver.North))
		assert.False(t, m.HasWall(2, 3, solver.East))
	})

	t.Run("set and clear apply to both sides of the edge", func(t *testing.T) {
		m, err := NewEmpty(6, 6)
		require.NoError(t, err)

		m.SetWall(2, 2, solver.North)
		assert.True(t, m.HasWall(2, 2, solver.North))
		assert.True(t, m.HasWall(2, 3, solver.South))

		m.ClearWall(2, 3, solver.South)
		assert.False(t, m.HasWall(2, 2, solver.North))
		assert.False(t, m.HasWall(2, 3, solver.South))
	})

	t.Run("boundary walls cannot be cleared", func(t *testing.T) {
		m, err := NewEmpty(6, 6)
		require.NoError(t, err)

		m.ClearWall(0, 0, solver.South)
		assert.True(t, m.HasWall(0, 0, solver.South))
	})

	t.Run("out of bounds reads as walled", func(t *testing.T) {
		m, err := NewEmpty(6, 6)
		require.NoError(t, err)

		assert.True(t, m.HasWall(-1, 0, solver.North))
		assert.True(t, m.HasWall(6, 6, solver.West))
	})
}
