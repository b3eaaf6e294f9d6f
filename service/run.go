package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/beka-birhanu/micromouse/config"
	dmn "github.com/beka-birhanu/micromouse/domain"
	"github.com/beka-birhanu/micromouse/infrastruture/display"
	"github.com/beka-birhanu/micromouse/infrastruture/simulator"
	"github.com/beka-birhanu/micromouse/maze"
	"github.com/beka-birhanu/micromouse/service/i"
	"github.com/beka-birhanu/micromouse/solver"
	"github.com/google/uuid"
)

const (
	defaultMaxSteps = 5000

	reasonCompleted = "fast run complete"
	reasonStepLimit = "step limit exceeded"
)

var ErrNilLogger = errors.New("a logger is required")

// RunService executes solver runs against simulated mazes, turns them
// into run reports, and hands completed runs to the repository and the
// leaderboard when those are configured.
type RunService struct {
	maxSteps int
	repo     i.RunRepo
	board    i.Leaderboard
	logger   *log.Logger
}

// Config holds the dependencies for a RunService.
type Config struct {
	MaxSteps    int           // navigator iterations per run, 0 means default
	Repo        i.RunRepo     // optional, runs are not persisted when nil
	Leaderboard i.Leaderboard // optional, runs are not ranked when nil
	Logger      *log.Logger
}

// NewRunService creates a RunService from the given config.
func NewRunService(c *Config) (*RunService, error) {
	if c.Logger == nil {
		return nil, ErrNilLogger
	}
	maxSteps := c.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	return &RunService{
		maxSteps: maxSteps,
		repo:     c.Repo,
		board:    c.Leaderboard,
		logger:   c.Logger,
	}, nil
}

// Execute runs the solver over the maze until the run finishes, fails,
// or the iteration cap is hit, and returns the report. Failed runs are
// reported, not returned as errors; only a broken setup errors out.
func (s *RunService) Execute(ctx context.Context, m *maze.Maze, seed int64, source string) (*dmn.Run, error) {
	mouse, err := simulator.New(m)
	if err != nil {
		return nil, err
	}
	board := display.New(m.Width, m.Height)

	nav, err := solver.New(solver.Config{
		Width:   m.Width,
		Height:  m.Height,
		Goals:   maze.GoalCells(m.Width, m.Height),
		Mouse:   mouse,
		Display: board,
		Logger:  s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating navigator: %w", err)
	}

	run := &dmn.Run{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Width:     m.Width,
		Height:    m.Height,
		Seed:      seed,
		Source:    source,
	}

	var stepErr error
	for iter := 0; iter < s.maxSteps; iter++ {
		done, err := nav.Step()
		if err != nil {
			stepErr = err
			break
		}
		if done {
			run.Success = true
			break
		}
	}

	switch {
	case stepErr != nil:
		run.Reason = stepErr.Error()
		s.logger.Printf("%s[ERROR]%s run %s failed: %s", config.LogErrorColor, config.LogColorReset, run.ID, stepErr)
	case run.Success:
		run.Reason = reasonCompleted
	default:
		run.Reason = reasonStepLimit
		s.logger.Printf("%s[ERROR]%s run %s hit the %d-iteration cap in state %s", config.LogErrorColor, config.LogColorReset, run.ID, s.maxSteps, nav.State())
	}

	run.TotalSteps = mouse.Steps()
	run.ExplorationMoves = len(nav.ExplorationPath())
	run.ReturnMoves = len(nav.ReturnPath())
	fast := nav.FastPath()
	run.FastMoves = len(fast)
	run.FastPath = solver.PathString(fast)
	run.Board = board.Render()

	s.logger.Printf("%s[INFO]%s run %s: success=%t steps=%d fast=%d", config.LogInfoColor, config.LogColorReset, run.ID, run.Success, run.TotalSteps, run.FastMoves)

	s.store(ctx, run)
	return run, nil
}

// store persists and ranks the run where backends are configured.
// Storage trouble is logged, never fatal to an already finished run.
func (s *RunService) store(ctx context.Context, run *dmn.Run) {
	if s.repo != nil {
		if err := s.repo.Save(run); err != nil {
			s.logger.Printf("%s[ERROR]%s saving run %s: %s", config.LogErrorColor, config.LogColorReset, run.ID, err)
		}
	}
	if s.board != nil && run.Success {
		if err := s.board.Record(ctx, run.ID, run.FastMoves); err != nil {
			s.logger.Printf("%s[ERROR]%s ranking run %s: %s", config.LogErrorColor, config.LogColorReset, run.ID, err)
		}
	}
}
