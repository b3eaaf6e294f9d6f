package solver

// Direction identifies one of the four cardinal directions on the maze
// grid. The numeric order North, East, South, West is load-bearing:
// path tracing breaks ties by taking the first open direction in this
// order, which is what keeps traced paths deterministic.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

const directionCount = 4

// Directions lists the cardinal directions in canonical trace order.
var Directions = [directionCount]Direction{North, East, South, West}

var directionNames = [directionCount]string{"North", "East", "South", "West"}

// Vector returns the unit step of the direction. North increases Y,
// East increases X, with (0,0) at the south-west corner.
func (d Direction) Vector() (int, int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

// Opposite returns the direction rotated 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// Clockwise returns the direction after a single right turn.
func (d Direction) Clockwise() Direction {
	return (d + 1) % directionCount
}

// CounterClockwise returns the direction after a single left turn.
func (d Direction) CounterClockwise() Direction {
	return (d + 3) % directionCount
}

// String returns the direction name (North, East, South, West).
func (d Direction) String() string {
	if d >= directionCount {
		return "Unknown"
	}
	return directionNames[d]
}

// PathString renders a move sequence as one letter per move (NESW),
// the compact form used in run reports.
func PathString(path []Direction) string {
	letters := [directionCount]byte{'N', 'E', 'S', 'W'}
	out := make([]byte, len(path))
	for i, d := range path {
		out[i] = letters[d%directionCount]
	}
	return string(out)
}

// Cell addresses a single maze cell. X runs west to east and Y runs
// south to north.
type Cell struct {
	X int
	Y int
}

// Neighbor returns the adjacent cell in the given direction. The result
// may be out of bounds; callers are expected to check.
func (c Cell) Neighbor(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
