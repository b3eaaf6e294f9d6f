package solver

// Unreachable marks a cell that no flood-fill wave has reached. It is a
// sentinel, never a real distance; callers must check for it before
// using a cell's value.
const Unreachable = -1

// DistanceGrid holds the cell distances produced by the most recent
// flood fill. The grid is fully reset and recomputed on every fill, it
// is never updated incrementally.
type DistanceGrid struct {
	width  int
	height int
	cells  []int
}

// NewDistanceGrid creates a grid with every cell at Unreachable.
func NewDistanceGrid(width, height int) *DistanceGrid {
	g := &DistanceGrid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
	g.reset()
	return g
}

// InBound reports whether the cell lies inside the grid.
func (g *DistanceGrid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the distance recorded for the cell, or Unreachable for
// cells no fill has reached and for out-of-bounds cells.
func (g *DistanceGrid) At(c Cell) int {
	if !g.InBound(c) {
		return Unreachable
	}
	return g.cells[c.Y*g.width+c.X]
}

func (g *DistanceGrid) set(c Cell, d int) {
	g.cells[c.Y*g.width+c.X] = d
}

func (g *DistanceGrid) reset() {
	for i := range g.cells {
		g.cells[i] = Unreachable
	}
}
