package i

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardEntry is one ranked run: the run that produced the fast
// path and the number of moves that path takes.
type LeaderboardEntry struct {
	RunID     uuid.UUID
	FastMoves int
}

// Leaderboard ranks completed runs by fast-path length, best first.
type Leaderboard interface {
	// Record ranks a completed run.
	Record(ctx context.Context, runID uuid.UUID, fastMoves int) error

	// Top lists up to count best entries.
	Top(ctx context.Context, count int64) ([]LeaderboardEntry, error)
}
