package solver

// VisitGrid marks the cells the mouse has physically entered. Cells
// only ever go from unvisited to visited. Visitation gates which cells
// restricted flood fills and restricted traces are allowed to trust,
// since unvisited cells may have incomplete wall data.
type VisitGrid struct {
	width  int
	height int
	seen   []bool
}

// NewVisitGrid creates a grid with every cell unvisited.
func NewVisitGrid(width, height int) *VisitGrid {
	return &VisitGrid{
		width:  width,
		height: height,
		seen:   make([]bool, width*height),
	}
}

// InBound reports whether the cell lies inside the grid.
func (v *VisitGrid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < v.width && c.Y >= 0 && c.Y < v.height
}

// MarkVisited records that the mouse has entered the cell. Marking a
// cell twice is a no-op.
func (v *VisitGrid) MarkVisited(c Cell) {
	if !v.InBound(c) {
		return
	}
	v.seen[c.Y*v.width+c.X] = true
}

// Visited reports whether the cell has been entered.
func (v *VisitGrid) Visited(c Cell) bool {
	if !v.InBound(c) {
		return false
	}
	return v.seen[c.Y*v.width+c.X]
}
