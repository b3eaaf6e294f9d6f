package solver

// Mouse is the sensor/actuator collaborator the navigator drives. The
// navigator tracks its own pose and visitation; the mouse only senses
// walls relative to its current heading and executes primitive motions.
type Mouse interface {
	// WallFront reports a wall directly ahead of the current heading.
	WallFront() bool

	// WallLeft reports a wall to the left of the current heading.
	WallLeft() bool

	// WallRight reports a wall to the right of the current heading.
	WallRight() bool

	// MoveForward advances one cell in the current heading. It returns
	// an error if the move could not be performed, such as driving
	// into a wall on a simulated maze.
	MoveForward() error

	// TurnLeft rotates the mouse 90 degrees counter-clockwise.
	TurnLeft()

	// TurnRight rotates the mouse 90 degrees clockwise.
	TurnRight()
}

// Mark identifies why a cell is being highlighted on a display.
type Mark byte

const (
	// MarkOrigin highlights the start cell at the beginning of a run.
	MarkOrigin Mark = 'G'

	// MarkGoal highlights the goal cell the mouse first reached.
	MarkGoal Mark = 'B'

	// MarkFinish highlights the cell where the run completed.
	MarkFinish Mark = 'R'
)

// Display receives purely observational updates about the run. Nothing
// written to a display is ever read back into navigation decisions.
type Display interface {
	// SetText annotates a cell, typically with its current flood-fill
	// distance. An empty string clears the annotation.
	SetText(c Cell, text string)

	// SetColor marks a cell with one of the run milestones.
	SetColor(c Cell, m Mark)

	// SetWall shows a discovered wall on the given side of a cell.
	SetWall(c Cell, d Direction)
}

// nopDisplay is substituted when no display collaborator is attached.
type nopDisplay struct{}

func (nopDisplay) SetText(Cell, string)    {}
func (nopDisplay) SetColor(Cell, Mark)     {}
func (nopDisplay) SetWall(Cell, Direction) {}
