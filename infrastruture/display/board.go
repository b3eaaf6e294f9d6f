// Package display collects the observational updates a run emits and
// renders the discovered state of the maze as ASCII.
package display

import (
	"strings"

	"github.com/beka-birhanu/micromouse/solver"
)

// Board implements solver.Display. It accumulates discovered walls,
// per-cell text and milestone marks; nothing it holds ever feeds back
// into navigation.
type Board struct {
	width  int
	height int
	walls  *solver.WallMap
	texts  []string
	marks  []solver.Mark
}

// New creates an empty board for a width x height grid.
func New(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		walls:  solver.NewWallMap(width, height),
		texts:  make([]string, width*height),
		marks:  make([]solver.Mark, width*height),
	}
}

// SetText annotates a cell; the empty string clears the annotation.
func (b *Board) SetText(c solver.Cell, text string) {
	if !b.walls.InBound(c) {
		return
	}
	if len(text) > 3 {
		text = text[:3]
	}
	b.texts[c.Y*b.width+c.X] = text
}

// SetColor marks a cell with a run milestone. Later marks overwrite
// earlier ones.
func (b *Board) SetColor(c solver.Cell, m solver.Mark) {
	if !b.walls.InBound(c) {
		return
	}
	b.marks[c.Y*b.width+c.X] = m
}

// SetWall shows a discovered wall on the given side of a cell.
func (b *Board) SetWall(c solver.Cell, d solver.Direction) {
	b.walls.RegisterWall(c, d)
}

// Render draws the discovered maze with north at the top. Cells show
// their annotation, or their milestone mark when unannotated; walls the
// run never discovered are drawn open.
func (b *Board) Render() string {
	var output strings.Builder

	top := "+"
	for x := 0; x < b.width; x++ {
		if b.walls.HasWall(solver.Cell{X: x, Y: b.height - 1}, solver.North) {
			top += "---+"
		} else {
			top += "   +"
		}
	}
	output.WriteString(top + "\n")

	for y := b.height - 1; y >= 0; y-- {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < b.width; x++ {
			c := solver.Cell{X: x, Y: y}

			cellRow += b.cellLabel(c)
			if b.walls.HasWall(c, solver.East) {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if b.walls.HasWall(c, solver.South) {
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

// cellLabel renders a cell's three-character body.
func (b *Board) cellLabel(c solver.Cell) string {
	idx := c.Y*b.width + c.X
	if text := b.texts[idx]; text != "" {
		return padLabel(text)
	}
	if mark := b.marks[idx]; mark != 0 {
		return " " + string(rune(mark)) + " "
	}
	return "   "
}

func padLabel(text string) string {
	switch len(text) {
	case 1:
		return " " + text + " "
	case 2:
		return text + " "
	default:
		return text
	}
}
