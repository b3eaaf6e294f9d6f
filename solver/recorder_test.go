package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathRecorder(t *testing.T) {
	t.Run("backtrack reverses and flips every move", func(t *testing.T) {
		r := NewPathRecorder()
		r.Record(North)
		r.Record(North)
		r.Record(East)
		r.Record(South)

		back := r.Backtrack()

		assert.Equal(t, []Direction{North, West, South, South}, back)
	})

	t.Run("backtrack walks home", func(t *testing.T) {
		r := NewPathRecorder()
		start := Cell{X: 0, Y: 0}

		cur := start
		for _, d := range []Direction{North, East, East, North, West} {
			r.Record(d)
			cur = cur.Neighbor(d)
		}

		for _, d := range r.Backtrack() {
			cur = cur.Neighbor(d)
		}
		assert.Equal(t, start, cur)
	})

	t.Run("empty recorder backtracks to nothing", func(t *testing.T) {
		r := NewPathRecorder()

		assert.Empty(t, r.Backtrack())
		assert.Zero(t, r.Len())
	})

	t.Run("moves returns a copy", func(t *testing.T) {
		r := NewPathRecorder()
		r.Record(East)

		moves := r.Moves()
		moves[0] = West

		assert.Equal(t, []Direction{East}, r.Moves())
	})
}

func TestDirection(t *testing.T) {
	t.Run("opposites", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, East, West.Opposite())
	})

	t.Run("rotations are inverse of each other", func(t *testing.T) {
		for _, d := range Directions {
			assert.Equal(t, d, d.Clockwise().CounterClockwise())
			assert.Equal(t, d.Opposite(), d.Clockwise().Clockwise())
		}
	})

	t.Run("path string", func(t *testing.T) {
		assert.Equal(t, "NNESW", PathString([]Direction{North, North, East, South, West}))
		assert.Equal(t, "", PathString(nil))
	})
}
