package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/micromouse/solver"
)

// The .maz exchange format is one line per cell:
//
//	x y n e s w
//
// where n, e, s and w are 1 when the wall is present. Every cell of the
// grid must appear exactly once.

var (
	ErrMalformedMazeFile   = errors.New("malformed maze file")
	ErrInconsistentWallMap = errors.New("inconsistent maze walls")
)

// Parse reads a .maz document. Dimensions are inferred from the highest
// coordinates seen. The document must describe every cell, keep the
// outer boundary closed, and agree on both sides of every shared edge.
func Parse(r io.Reader) (*Maze, error) {
	type record struct {
		c    Cell
		x, y int
	}

	var records []record
	width, height := 0, 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: line %d: expected 6 fields, got %d", ErrMalformedMazeFile, lineNo, len(fields))
		}

		values := make([]int, 6)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedMazeFile, lineNo, err)
			}
			values[i] = v
		}
		x, y := values[0], values[1]
		if x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: line %d: negative coordinates", ErrMalformedMazeFile, lineNo)
		}
		for _, flag := range values[2:] {
			if flag != 0 && flag != 1 {
				return nil, fmt.Errorf("%w: line %d: wall flags must be 0 or 1", ErrMalformedMazeFile, lineNo)
			}
		}

		records = append(records, record{
			x: x,
			y: y,
			c: Cell{
				North: values[2] == 1,
				East:  values[3] == 1,
				South: values[4] == 1,
				West:  values[5] == 1,
			},
		})
		width = max(width, x+1)
		height = max(height, y+1)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze file: %w", err)
	}

	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(records) != width*height {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d maze", ErrMalformedMazeFile, len(records), width, height)
	}

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, width*height)
	for _, rec := range records {
		if seen[rec.y*width+rec.x] {
			return nil, fmt.Errorf("%w: duplicate cell (%d,%d)", ErrMalformedMazeFile, rec.x, rec.y)
		}
		seen[rec.y*width+rec.x] = true
		m.Grid[rec.y][rec.x] = rec.c
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// validate checks boundary closure and wall symmetry across every
// shared edge.
func (m *Maze) validate() error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			for _, d := range solver.Directions {
				nx, ny := neighborOf(x, y, d)
				if !m.InBound(nx, ny) {
					if !m.Grid[y][x].HasWall(d) {
						return fmt.Errorf("%w: open boundary at (%d,%d) %s", ErrInconsistentWallMap, x, y, d)
					}
					continue
				}
				if m.Grid[y][x].HasWall(d) != m.Grid[ny][nx].HasWall(d.Opposite()) {
					return fmt.Errorf("%w: edge (%d,%d) %s disagrees with neighbor", ErrInconsistentWallMap, x, y, d)
				}
			}
		}
	}
	return nil
}

// Encode writes the maze in .maz format, cells ordered column by
// column as the original tooling emits them.
func (m *Maze) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			cell := m.Grid[y][x]
			_, err := fmt.Fprintf(bw, "%d %d %d %d %d %d\n",
				x, y, boolFlag(cell.North), boolFlag(cell.East), boolFlag(cell.South), boolFlag(cell.West))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
