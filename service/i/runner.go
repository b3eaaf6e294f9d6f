package i

import (
	"context"

	dmn "github.com/beka-birhanu/micromouse/domain"
	"github.com/beka-birhanu/micromouse/maze"
)

// Runner executes a complete solver run against a maze and produces
// the run report. Seed and source describe where the maze came from.
type Runner interface {
	Execute(ctx context.Context, m *maze.Maze, seed int64, source string) (*dmn.Run, error)
}
