package solver

// WallMap accumulates every wall the mouse has discovered so far, as a
// 4-bit mask per cell (one bit per Direction). Walls are only ever
// added, never removed.
type WallMap struct {
	width  int
	height int
	masks  []uint8
}

// NewWallMap creates an empty wall map for a width x height grid.
func NewWallMap(width, height int) *WallMap {
	return &WallMap{
		width:  width,
		height: height,
		masks:  make([]uint8, width*height),
	}
}

// Width returns the number of columns in the grid.
func (w *WallMap) Width() int {
	return w.width
}

// Height returns the number of rows in the grid.
func (w *WallMap) Height() int {
	return w.height
}

// InBound reports whether the cell lies inside the grid.
func (w *WallMap) InBound(c Cell) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

func (w *WallMap) index(c Cell) int {
	return c.Y*w.width + c.X
}

// RegisterWall records a wall on the given side of a cell. The matching
// wall is recorded on the neighboring cell as well, when that neighbor
// is in bounds, so the two cells always agree. Registering the same
// wall twice is a no-op.
func (w *WallMap) RegisterWall(c Cell, d Direction) {
	if !w.InBound(c) {
		return
	}
	w.masks[w.index(c)] |= 1 << d

	if n := c.Neighbor(d); w.InBound(n) {
		w.masks[w.index(n)] |= 1 << d.Opposite()
	}
}

// HasWall reports whether a wall has been recorded on the given side of
// the cell. Out-of-bounds cells read as fully walled.
func (w *WallMap) HasWall(c Cell, d Direction) bool {
	if !w.InBound(c) {
		return true
	}
	return w.masks[w.index(c)]&(1<<d) != 0
}
