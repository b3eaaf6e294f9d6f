// Package solverapi provides structures and utilities for managing run requests and responses.
package solverapi

import (
	"time"

	dmn "github.com/beka-birhanu/micromouse/domain"
	"github.com/google/uuid"
)

// RunRequest represents a request to execute a solver run.
//
// When Maze is non-empty it is parsed as a wall map and Width, Height,
// and Seed are ignored. Otherwise a maze is generated from the given
// dimensions and seed, falling back to configured defaults and a
// time-based seed when omitted.
type RunRequest struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   *int64 `json:"seed"`
	Maze   string `json:"maze"`
}

// RunResponse represents the report of a finished solver run.
type RunResponse struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	Seed             int64     `json:"seed"`
	Source           string    `json:"source"`
	Success          bool      `json:"success"`
	Reason           string    `json:"reason"`
	TotalSteps       int       `json:"total_steps"`
	ExplorationMoves int       `json:"exploration_moves"`
	ReturnMoves      int       `json:"return_moves"`
	FastMoves        int       `json:"fast_moves"`
	FastPath         string    `json:"fast_path"`
	Board            string    `json:"board"`
}

// runResponseFrom maps a run report to its response form.
func runResponseFrom(run *dmn.Run) *RunResponse {
	return &RunResponse{
		ID:               run.ID,
		CreatedAt:        run.CreatedAt,
		Width:            run.Width,
		Height:           run.Height,
		Seed:             run.Seed,
		Source:           run.Source,
		Success:          run.Success,
		Reason:           run.Reason,
		TotalSteps:       run.TotalSteps,
		ExplorationMoves: run.ExplorationMoves,
		ReturnMoves:      run.ReturnMoves,
		FastMoves:        run.FastMoves,
		FastPath:         run.FastPath,
		Board:            run.Board,
	}
}

// LeaderboardEntryResponse represents one ranked run on the leaderboard.
type LeaderboardEntryResponse struct {
	RunID     uuid.UUID `json:"run_id"`
	FastMoves int       `json:"fast_moves"`
}
