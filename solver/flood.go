package solver

// FloodFill computes shortest-path distances from a set of goal cells
// over the walls discovered so far. It operates on grids owned by the
// navigator; every computation resets the distance grid and expands
// breadth first, so all edges cost one and multiple goal seeds are
// valid (seed order does not affect the result).
type FloodFill struct {
	walls   *WallMap
	visited *VisitGrid
	dist    *DistanceGrid
}

// NewFloodFill wires a flood-fill engine to the shared wall, visit and
// distance grids.
func NewFloodFill(walls *WallMap, visited *VisitGrid, dist *DistanceGrid) *FloodFill {
	return &FloodFill{
		walls:   walls,
		visited: visited,
		dist:    dist,
	}
}

// Compute fills the distance grid from the goal cells through every
// wall-free edge, visited or not. This is the searching-phase fill: it
// lets the mouse navigate toward territory it has not explored yet.
func (f *FloodFill) Compute(goals []Cell) {
	f.fill(goals, false)
}

// ComputeVisited fills the distance grid from the goal cells, seeding
// only goals that have been visited and expanding only into visited
// cells. Paths planned over this fill stay inside trusted territory.
func (f *FloodFill) ComputeVisited(goals []Cell) {
	f.fill(goals, true)
}

func (f *FloodFill) fill(goals []Cell, visitedOnly bool) {
	f.dist.reset()

	queue := make([]Cell, 0, len(goals))
	for _, g := range goals {
		if !f.walls.InBound(g) {
			continue
		}
		if visitedOnly && !f.visited.Visited(g) {
			continue
		}
		if f.dist.At(g) != Unreachable {
			continue // duplicate seed
		}
		f.dist.set(g, 0)
		queue = append(queue, g)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := f.dist.At(cur)

		for _, dir := range Directions {
			if f.walls.HasWall(cur, dir) {
				continue
			}
			next := cur.Neighbor(dir)
			if !f.walls.InBound(next) {
				continue
			}
			if visitedOnly && !f.visited.Visited(next) {
				continue
			}
			if f.dist.At(next) != Unreachable {
				continue
			}
			f.dist.set(next, d+1)
			queue = append(queue, next)
		}
	}
}
