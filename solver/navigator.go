package solver

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
)

// Run states. A run moves strictly forward through them; Finished has
// no outgoing transitions.
const (
	StateSearching State = iota // exploring, sensors active
	StateReturning              // replaying the precomputed return path
	StateFastRun                // replaying the precomputed fast path
	StateFinished               // run complete, no further activity
)

// State identifies the phase a run is in.
type State uint8

var stateNames = [...]string{"SEARCHING", "RETURNING", "FAST_RUN", "FINISHED"}

// String returns the phase name.
func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Navigation errors.
var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrNoGoals           = errors.New("at least one goal cell is required")
	ErrGoalOutOfBounds   = errors.New("goal cell is out of the grid")
	ErrNilMouse          = errors.New("a mouse is required")

	// ErrNoFastPath reports that no visited-only route exists from the
	// start to the goal set when the fast path is built. RETURNING has
	// already proven connectivity in the other direction, so hitting
	// this means the maze or the wall data is broken; there is no
	// fallback.
	ErrNoFastPath = errors.New("no visited-only path from start to goal")
)

// Config carries the dependencies and dimensions for a Navigator.
type Config struct {
	Width   int
	Height  int
	Goals   []Cell      // goal cell set, usually the center block
	Mouse   Mouse       // sensor/actuator collaborator, required
	Display Display     // optional observational display
	Logger  *log.Logger // optional, discarded when nil
}

// Navigator owns every piece of mutable run state: the wall map, the
// visit grid, the distance grid, the pose, and the three paths. It
// drives the mouse through the four run phases one discrete unit of
// work at a time; there is no concurrency anywhere in it.
type Navigator struct {
	width  int
	height int
	goals  []Cell
	start  Cell

	walls    *WallMap
	visited  *VisitGrid
	dist     *DistanceGrid
	flood    *FloodFill
	recorder *PathRecorder

	pos     Cell
	heading Direction
	state   State

	returnPath []Direction
	returnIdx  int
	fastPath   []Direction
	fastIdx    int

	mouse   Mouse
	display Display
	logger  *log.Logger
}

// New creates a Navigator at (0,0) heading North, registers the known
// boundary walls of the start corner, and probes the three sensed
// directions to settle the initial heading: an open front keeps North,
// otherwise an open right or left side turns the mouse that way. All
// three blocked is logged and the run continues best effort. The wall
// behind the settled heading is registered as well.
func New(cfg Config) (*Navigator, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(cfg.Goals) == 0 {
		return nil, ErrNoGoals
	}
	if cfg.Mouse == nil {
		return nil, ErrNilMouse
	}

	n := &Navigator{
		width:    cfg.Width,
		height:   cfg.Height,
		goals:    make([]Cell, len(cfg.Goals)),
		walls:    NewWallMap(cfg.Width, cfg.Height),
		visited:  NewVisitGrid(cfg.Width, cfg.Height),
		dist:     NewDistanceGrid(cfg.Width, cfg.Height),
		recorder: NewPathRecorder(),
		heading:  North,
		state:    StateSearching,
		mouse:    cfg.Mouse,
		display:  cfg.Display,
		logger:   cfg.Logger,
	}
	copy(n.goals, cfg.Goals)
	for _, g := range n.goals {
		if !n.walls.InBound(g) {
			return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, g)
		}
	}
	if n.display == nil {
		n.display = nopDisplay{}
	}
	if n.logger == nil {
		n.logger = log.New(io.Discard, "", 0)
	}
	n.flood = NewFloodFill(n.walls, n.visited, n.dist)

	n.visited.MarkVisited(n.start)
	n.display.SetColor(n.start, MarkOrigin)

	// The start corner's south and west boundary walls are known
	// before any sensing.
	n.registerWall(n.start, South)
	n.registerWall(n.start, West)

	n.probeHeading()
	n.registerWall(n.start, n.heading.Opposite())

	return n, nil
}

// probeHeading settles the initial heading from the three sensed sides.
func (n *Navigator) probeHeading() {
	switch {
	case !n.mouse.WallFront():
		n.logger.Printf("[INFO] open passage: front, heading %s", n.heading)
	case !n.mouse.WallRight():
		n.turnRight()
		n.logger.Printf("[INFO] open passage: right, heading %s", n.heading)
	case !n.mouse.WallLeft():
		n.turnLeft()
		n.logger.Printf("[INFO] open passage: left, heading %s", n.heading)
	default:
		n.logger.Printf("[ERROR] no open passage detected at start")
	}
}

// State returns the current run phase.
func (n *Navigator) State() State {
	return n.state
}

// Position returns the cell the mouse is currently in.
func (n *Navigator) Position() Cell {
	return n.pos
}

// Heading returns the direction the mouse currently faces.
func (n *Navigator) Heading() Direction {
	return n.heading
}

// ExplorationPath returns a copy of the moves recorded while searching.
func (n *Navigator) ExplorationPath() []Direction {
	return n.recorder.Moves()
}

// ReturnPath returns a copy of the precomputed return path.
func (n *Navigator) ReturnPath() []Direction {
	return copyPath(n.returnPath)
}

// FastPath returns a copy of the precomputed fast path.
func (n *Navigator) FastPath() []Direction {
	return copyPath(n.fastPath)
}

func copyPath(p []Direction) []Direction {
	out := make([]Direction, len(p))
	copy(out, p)
	return out
}

// Step performs one discrete unit of work: a sense-decide-move cycle
// while searching, or a single replay step in the later phases. It
// reports true once the run has finished. Errors are fatal to the run:
// a failed move, or a fast path that cannot be built.
func (n *Navigator) Step() (bool, error) {
	switch n.state {
	case StateSearching:
		return false, n.searchStep()
	case StateReturning:
		return false, n.returnStep()
	case StateFastRun:
		return n.fastRunStep()
	default:
		return true, nil
	}
}

// searchStep senses, floods toward the goals, and either transitions to
// RETURNING (when standing on a goal) or advances one cell toward the
// lowest-distance neighbor.
func (n *Navigator) searchStep() error {
	n.senseWalls()
	n.flood.Compute(n.goals)
	n.refreshDisplay()

	if n.dist.At(n.pos) == 0 {
		n.logger.Printf("[INFO] goal reached at (%d,%d), building return path", n.pos.X, n.pos.Y)
		n.display.SetColor(n.pos, MarkGoal)
		n.returnPath = n.buildReturnPath()
		n.returnIdx = 0
		n.state = StateReturning
		return nil
	}

	return n.moveToBestNeighbor()
}

// returnStep replays the next return move, or builds the fast path and
// transitions once the return path is exhausted.
func (n *Navigator) returnStep() error {
	if n.returnIdx >= len(n.returnPath) {
		n.logger.Printf("[INFO] back at start, building fast path")
		n.display.SetColor(n.start, MarkFinish)

		fast, err := n.buildFastPath()
		if err != nil {
			return err
		}
		n.fastPath = fast
		n.fastIdx = 0
		n.state = StateFastRun
		n.logger.Printf("[INFO] fast path ready, %d moves", len(fast))
		return nil
	}

	return n.replayStep(n.returnPath, &n.returnIdx)
}

// fastRunStep replays the next fast-path move. The run finishes when
// the path is exhausted or as soon as the mouse enters any goal cell.
func (n *Navigator) fastRunStep() (bool, error) {
	if n.fastIdx >= len(n.fastPath) {
		n.finish()
		return true, nil
	}

	if err := n.replayStep(n.fastPath, &n.fastIdx); err != nil {
		return false, err
	}

	for _, g := range n.goals {
		if n.pos == g {
			n.finish()
			return true, nil
		}
	}
	return false, nil
}

func (n *Navigator) finish() {
	n.state = StateFinished
	n.display.SetColor(n.pos, MarkFinish)
	n.logger.Printf("[INFO] fast run complete")
}

// buildReturnPath computes the route home from the current (goal) cell.
// It first tries the shortest path through visited territory: a
// restricted flood fill seeded at the start, traced from the current
// cell. If the start is unreachable in that fill or the trace gets
// stuck, it falls back to the reversed exploration log, which is longer
// but always valid.
func (n *Navigator) buildReturnPath() []Direction {
	n.flood.ComputeVisited([]Cell{n.start})

	if n.dist.At(n.pos) != Unreachable {
		if path, err := n.flood.TracePath(n.pos, true); err == nil {
			n.logger.Printf("[INFO] return path: smart route, %d moves", len(path))
			return path
		}
		n.logger.Printf("[WARN] smart return trace stuck at (%d,%d)", n.pos.X, n.pos.Y)
	}

	fallback := n.recorder.Backtrack()
	n.logger.Printf("[INFO] return path: fallback retrace, %d moves", len(fallback))
	return fallback
}

// buildFastPath computes the optimal start-to-goal run over the full
// visited territory. There is no fallback here: an unreachable start or
// a stuck trace is ErrNoFastPath.
func (n *Navigator) buildFastPath() ([]Direction, error) {
	n.flood.ComputeVisited(n.goals)

	if n.dist.At(n.start) == Unreachable {
		return nil, ErrNoFastPath
	}
	path, err := n.flood.TracePath(n.start, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFastPath, err)
	}
	return path, nil
}

// senseWalls reads the three sensed sides (never behind) and registers
// any walls found, in absolute directions.
func (n *Navigator) senseWalls() {
	if n.mouse.WallFront() {
		n.registerWall(n.pos, n.heading)
	}
	if n.mouse.WallLeft() {
		n.registerWall(n.pos, n.heading.CounterClockwise())
	}
	if n.mouse.WallRight() {
		n.registerWall(n.pos, n.heading.Clockwise())
	}
}

func (n *Navigator) registerWall(c Cell, d Direction) {
	n.walls.RegisterWall(c, d)
	n.display.SetWall(c, d)
}

// moveToBestNeighbor advances one cell toward the open, in-bounds
// neighbor minimizing dist*10 plus a turn penalty of 1, so lower
// distance always wins and ties prefer continuing straight. Neighbors
// still at the Unreachable sentinel are skipped. When nothing
// qualifies, the iteration is a no-op and only a warning is logged; no
// invariant guarantees a navigable maze.
func (n *Navigator) moveToBestNeighbor() error {
	best := North
	bestScore := -1

	for _, dir := range Directions {
		if n.walls.HasWall(n.pos, dir) {
			continue
		}
		next := n.pos.Neighbor(dir)
		if !n.walls.InBound(next) {
			continue
		}
		d := n.dist.At(next)
		if d == Unreachable {
			continue
		}

		score := d * 10
		if dir != n.heading {
			score++
		}
		if bestScore == -1 || score < bestScore {
			bestScore = score
			best = dir
		}
	}

	if bestScore == -1 {
		n.logger.Printf("[WARN] no viable move from (%d,%d), staying put", n.pos.X, n.pos.Y)
		return nil
	}

	n.rotateTo(best)
	return n.moveForward()
}

// replayStep rotates to the next stored direction and moves forward one
// cell, consuming one path entry.
func (n *Navigator) replayStep(path []Direction, idx *int) error {
	d := path[*idx]
	*idx++
	n.rotateTo(d)
	return n.moveForward()
}

// rotateTo turns toward the target direction using the shorter
// rotation: left when the target is exactly one left turn away, right
// otherwise.
func (n *Navigator) rotateTo(d Direction) {
	for n.heading != d {
		if n.heading.CounterClockwise() == d {
			n.turnLeft()
		} else {
			n.turnRight()
		}
	}
}

func (n *Navigator) turnRight() {
	n.mouse.TurnRight()
	n.heading = n.heading.Clockwise()
}

func (n *Navigator) turnLeft() {
	n.mouse.TurnLeft()
	n.heading = n.heading.CounterClockwise()
}

// moveForward executes the move, then updates pose and visitation; the
// mouse never reports position back. Moves made while searching are
// recorded for the fallback return route.
func (n *Navigator) moveForward() error {
	if err := n.mouse.MoveForward(); err != nil {
		return fmt.Errorf("moving forward at (%d,%d) heading %s: %w", n.pos.X, n.pos.Y, n.heading, err)
	}
	n.pos = n.pos.Neighbor(n.heading)
	n.visited.MarkVisited(n.pos)
	if n.state == StateSearching {
		n.recorder.Record(n.heading)
	}
	return nil
}

// refreshDisplay annotates every visited, reachable cell with its
// current flood-fill distance and blanks the rest.
func (n *Navigator) refreshDisplay() {
	for y := 0; y < n.height; y++ {
		for x := 0; x < n.width; x++ {
			c := Cell{X: x, Y: y}
			if n.visited.Visited(c) && n.dist.At(c) != Unreachable {
				n.display.SetText(c, strconv.Itoa(n.dist.At(c)))
			} else {
				n.display.SetText(c, "")
			}
		}
	}
}
