package solver

import "errors"

// ErrTraceStuck reports that no decreasing-distance step exists from
// some cell along the trace, or that the safety bound was exceeded.
// Callers decide how to recover; the return-path builder falls back to
// the recorded exploration route, the fast-path builder treats it as
// fatal.
var ErrTraceStuck = errors.New("path trace stuck")

// TracePath walks the most recently computed distance grid downhill
// from start until it reaches a distance-0 cell, returning the
// directions taken. At every step the four directions are examined in
// canonical order (North, East, South, West) and the first open,
// in-bounds direction whose neighbor sits at exactly distance-1 wins;
// that fixed tie-break makes the result fully determined by the wall
// map, visit grid, distance grid and start cell. When visitedOnly is
// set, unvisited neighbors are skipped as well.
//
// Tracing from a cell already at distance 0 succeeds with an empty
// path. A start at the Unreachable sentinel, a cell with no qualifying
// step, or a walk longer than width*height steps returns ErrTraceStuck.
func (f *FloodFill) TracePath(start Cell, visitedOnly bool) ([]Direction, error) {
	if f.dist.At(start) == Unreachable {
		return nil, ErrTraceStuck
	}

	path := make([]Direction, 0, f.dist.At(start))
	cur := start
	limit := f.walls.Width() * f.walls.Height()

	for steps := 0; f.dist.At(cur) != 0; steps++ {
		if steps >= limit {
			return nil, ErrTraceStuck
		}

		want := f.dist.At(cur) - 1
		moved := false
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
			if f.dist.At(next) != want {
				continue
			}
			path = append(path, dir)
			cur = next
			moved = true
			break
		}

		if !moved {
			return nil, ErrTraceStuck
		}
	}

	return path, nil
}
