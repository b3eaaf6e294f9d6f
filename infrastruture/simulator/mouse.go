// Package simulator drives a virtual micromouse through a fully known
// maze, standing in for the physical sensor and motor interface.
package simulator

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/micromouse/maze"
	"github.com/beka-birhanu/micromouse/solver"
)

var (
	ErrNilMaze = errors.New("a maze is required")

	// ErrWallCrash reports a forward move into a wall or out of the
	// maze. A real mouse would have hit something; the run is over.
	ErrWallCrash = errors.New("crashed into a wall")
)

// Mouse implements solver.Mouse against a ground-truth maze. It tracks
// its own pose starting at (0,0) heading North and counts every
// forward move.
type Mouse struct {
	maze    *maze.Maze
	pos     solver.Cell
	heading solver.Direction
	steps   int
}

// New creates a simulated mouse at the start cell of the given maze.
func New(m *maze.Maze) (*Mouse, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	return &Mouse{
		maze:    m,
		heading: solver.North,
	}, nil
}

// WallFront reports the ground-truth wall directly ahead.
func (s *Mouse) WallFront() bool {
	return s.maze.HasWall(s.pos.X, s.pos.Y, s.heading)
}

// WallLeft reports the ground-truth wall to the left of the heading.
func (s *Mouse) WallLeft() bool {
	return s.maze.HasWall(s.pos.X, s.pos.Y, s.heading.CounterClockwise())
}

// WallRight reports the ground-truth wall to the right of the heading.
func (s *Mouse) WallRight() bool {
	return s.maze.HasWall(s.pos.X, s.pos.Y, s.heading.Clockwise())
}

// MoveForward advances one cell in the current heading. Driving into a
// wall or out of the maze returns ErrWallCrash, the same way the
// competition harness fails a run.
func (s *Mouse) MoveForward() error {
	if s.maze.HasWall(s.pos.X, s.pos.Y, s.heading) {
		return fmt.Errorf("%w: at (%d,%d) heading %s", ErrWallCrash, s.pos.X, s.pos.Y, s.heading)
	}
	next := s.pos.Neighbor(s.heading)
	if !s.maze.InBound(next.X, next.Y) {
		return fmt.Errorf("%w: left the maze at (%d,%d)", ErrWallCrash, next.X, next.Y)
	}

	s.pos = next
	s.steps++
	return nil
}

// TurnLeft rotates the mouse 90 degrees counter-clockwise.
func (s *Mouse) TurnLeft() {
	s.heading = s.heading.CounterClockwise()
}

// TurnRight rotates the mouse 90 degrees clockwise.
func (s *Mouse) TurnRight() {
	s.heading = s.heading.Clockwise()
}

// Position returns the cell the simulated mouse is in.
func (s *Mouse) Position() solver.Cell {
	return s.pos
}

// Heading returns the direction the simulated mouse faces.
func (s *Mouse) Heading() solver.Direction {
	return s.heading
}

// Steps returns the total number of forward moves performed.
func (s *Mouse) Steps() int {
	return s.steps
}
