package maze

import (
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/micromouse/solver"
)

const generateAttempts = 16

// walkMove records one step of a random walk.
type walkMove struct {
	from solver.Cell
	to   solver.Cell
	dir  solver.Direction
}

// GoalCells returns the center 2x2 block used as the goal set for a
// maze of the given dimensions.
func GoalCells(width, height int) []solver.Cell {
	gx, gy := width/2-1, height/2-1
	return []solver.Cell{
		{X: gx, Y: gy},
		{X: gx, Y: gy + 1},
		{X: gx + 1, Y: gy},
		{X: gx + 1, Y: gy + 1},
	}
}

// Generate creates a random competition-style maze: a Wilson-walk
// layout, a sealed center 2x2 goal room with exactly one entrance, and
// a start cell at (0,0) with exactly three walls. The same seed always
// produces the same maze. The result is guaranteed to have a route
// from the start to the goal room.
func Generate(width, height int, seed int64) (*Maze, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for attempt := 0; attempt < generateAttempts; attempt++ {
		m, err := New(width, height)
		if err != nil {
			return nil, err
		}

		m.carvePassages(rng)
		m.applyStartRule(rng)
		if m.carveGoalRoom(rng) {
			return m, nil
		}
		// The start pocket ended up sealed away from the goal room;
		// re-carve with fresh randomness.
	}

	return nil, ErrNotSolvable
}

// carvePassages opens walls with Wilson-style random walks until every
// cell has been absorbed into the connected region.
func (m *Maze) carvePassages(rng *rand.Rand) {
	visited := make(map[string]struct{})
	start := m.randomCell(rng)
	visited[cellKey(start)] = struct{}{}

	for len(visited) < m.Width*m.Height {
		for cell, move := range m.randomWalk(rng, visited) {
			m.ClearWall(move.from.X, move.from.Y, move.dir)
			visited[cellKey(cell)] = struct{}{}
		}
	}
}

// randomWalk walks randomly from an unvisited cell until it touches the
// visited region, keeping only the latest move out of each walked cell.
func (m *Maze) randomWalk(rng *rand.Rand, visited map[string]struct{}) map[solver.Cell]walkMove {
	cell := m.randomUnvisitedCell(rng, visited)
	visits := make(map[solver.Cell]walkMove)

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[rng.Intn(len(neighbors))]
		visits[cell] = next
		if _, included := visited[cellKey(next.to)]; included {
			break
		}
		cell = next.to
	}

	return visits
}

// neighbors lists the in-bounds moves out of a cell.
func (m *Maze) neighbors(c solver.Cell) []walkMove {
	var result []walkMove
	for _, d := range solver.Directions {
		n := c.Neighbor(d)
		if m.InBound(n.X, n.Y) {
			result = append(result, walkMove{from: c, to: n, dir: d})
		}
	}
	return result
}

func (m *Maze) randomCell(rng *rand.Rand) solver.Cell {
	return solver.Cell{X: rng.Intn(m.Width), Y: rng.Intn(m.Height)}
}

func (m *Maze) randomUnvisitedCell(rng *rand.Rand, visited map[string]struct{}) solver.Cell {
	for {
		c := m.randomCell(rng)
		if _, included := visited[cellKey(c)]; !included {
			return c
		}
	}
}

func cellKey(c solver.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// applyStartRule gives (0,0) exactly three walls: south and west are
// boundary, and of north and east one is walled and the other open,
// chosen at random.
func (m *Maze) applyStartRule(rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		m.SetWall(0, 0, solver.North)
		m.ClearWall(0, 0, solver.East)
	} else {
		m.ClearWall(0, 0, solver.North)
		m.SetWall(0, 0, solver.East)
	}
}

// carveGoalRoom opens the interior of the center 2x2 block, seals its
// perimeter, and opens exactly one entrance that the start cell can
// reach. It reports false when no reachable entrance exists, which
// means the carving stranded the start in a pocket.
func (m *Maze) carveGoalRoom(rng *rand.Rand) bool {
	goals := GoalCells(m.Width, m.Height)
	inRoom := func(c solver.Cell) bool {
		for _, g := range goals {
			if c == g {
				return true
			}
		}
		return false
	}

	// Perimeter walls are kept as (room cell, direction) pairs; the
	// interior walls between the four room cells open up.
	var perimeter []walkMove
	for _, g := range goals {
		for _, d := range solver.Directions {
			n := g.Neighbor(d)
			if !m.InBound(n.X, n.Y) {
				continue
			}
			if inRoom(n) {
				m.ClearWall(g.X, g.Y, d)
			} else {
				m.SetWall(g.X, g.Y, d)
				perimeter = append(perimeter, walkMove{from: g, to: n, dir: d})
			}
		}
	}

	// Open the first candidate entrance whose outside cell the start
	// can already reach, so the run is always solvable.
	reach := m.reachableFrom(solver.Cell{X: 0, Y: 0})
	rng.Shuffle(len(perimeter), func(i, j int) {
		perimeter[i], perimeter[j] = perimeter[j], perimeter[i]
	})
	for _, p := range perimeter {
		if reach[p.to] {
			m.ClearWall(p.from.X, p.from.Y, p.dir)
			return true
		}
	}
	return false
}

// reachableFrom floods the true maze from a cell and returns the set of
// reachable cells.
func (m *Maze) reachableFrom(start solver.Cell) map[solver.Cell]bool {
	reach := map[solver.Cell]bool{start: true}
	queue := []solver.Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range solver.Directions {
			if m.HasWall(cur.X, cur.Y, d) {
				continue
			}
			next := cur.Neighbor(d)
			if !m.InBound(next.X, next.Y) || reach[next] {
				continue
			}
			reach[next] = true
			queue = append(queue, next)
		}
	}

	return reach
}
