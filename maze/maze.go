/*
Package maze provides the fully known wall layout a simulated mouse is
driven through: a rectangular grid of cells with four wall flags each,
random generation following micromouse competition rules, and reading
and writing of the plain-text .maz exchange format.

The solver never sees this package directly; it only experiences the
maze through its sensor interface.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/micromouse/solver"
)

const (
	minMazeDimension = 6
	maxMazeDimension = 32
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNotSolvable       = errors.New("maze has no start-to-goal route")
)

// Cell holds the four wall flags of one maze cell.
type Cell struct {
	North bool
	East  bool
	South bool
	West  bool
}

// HasWall reports the wall flag on the given side.
func (c *Cell) HasWall(d solver.Direction) bool {
	switch d {
	case solver.North:
		return c.North
	case solver.East:
		return c.East
	case solver.South:
		return c.South
	default:
		return c.West
	}
}

func (c *Cell) setWall(d solver.Direction, present bool) {
	switch d {
	case solver.North:
		c.North = present
	case solver.East:
		c.East = present
	case solver.South:
		c.South = present
	default:
		c.West = present
	}
}

// Maze is a rectangular grid of cells. Grid is indexed [y][x] with
// (0,0) at the south-west corner, matching the solver's coordinates.
type Maze struct {
	Width  int
	Height int
	Grid   [][]Cell
}

// New creates a maze of the given dimensions with every wall present.
func New(width, height int) (*Maze, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Cell{North: true, East: true, South: true, West: true}
		}
	}

	return &Maze{Width: width, Height: height, Grid: grid}, nil
}

// NewEmpty creates a maze with walls only on the outer boundary.
func NewEmpty(width, height int) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Grid[y][x] = Cell{
				North: y == height-1,
				East:  x == width-1,
				South: y == 0,
				West:  x == 0,
			}
		}
	}
	return m, nil
}

func checkDimensions(width, height int) error {
	if min(width, height) < minMazeDimension || max(width, height) > maxMazeDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: dimensions must be even for a center goal block", ErrInvalidDimensions)
	}
	return nil
}

// InBound reports whether the coordinates lie inside the maze.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// HasWall reports whether a wall is present on the given side of the
// cell. Out-of-bounds cells read as fully walled.
func (m *Maze) HasWall(x, y int, d solver.Direction) bool {
	if !m.InBound(x, y) {
		return true
	}
	return m.Grid[y][x].HasWall(d)
}

// SetWall raises the wall on the given side of the cell, on both sides
// of the shared edge.
func (m *Maze) SetWall(x, y int, d solver.Direction) {
	m.applyWall(x, y, d, true)
}

// ClearWall removes the wall on the given side of the cell, on both
// sides of the shared edge. Boundary walls cannot be cleared.
func (m *Maze) ClearWall(x, y int, d solver.Direction) {
	nx, ny := neighborOf(x, y, d)
	if !m.InBound(nx, ny) {
		return
	}
	m.applyWall(x, y, d, false)
}

func (m *Maze) applyWall(x, y int, d solver.Direction, present bool) {
	if !m.InBound(x, y) {
		return
	}
	m.Grid[y][x].setWall(d, present)

	if nx, ny := neighborOf(x, y, d); m.InBound(nx, ny) {
		m.Grid[ny][nx].setWall(d.Opposite(), present)
	}
}

func neighborOf(x, y int, d solver.Direction) (int, int) {
	dx, dy := d.Vector()
	return x + dx, y + dy
}

// String provides a textual representation of the maze, rendered with
// north at the top.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	for y := m.Height - 1; y >= 0; y-- {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < m.Width; x++ {
			cell := m.Grid[y][x]

			cellRow += "   "
			if cell.East {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if cell.South {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
