package leaderboard

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int64) (*RedisLeaderboard, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	board, err := NewRedisLeaderboard(client, size)
	require.NoError(t, err)

	return board.(*RedisLeaderboard), mr
}

func TestRedisLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks runs shortest fast path first", func(t *testing.T) {
		board, _ := newTestBoard(t, 10)

		slow, mid, fast := uuid.New(), uuid.New(), uuid.New()
		require.NoError(t, board.Record(ctx, slow, 40))
		require.NoError(t, board.Record(ctx, fast, 12))
		require.NoError(t, board.Record(ctx, mid, 25))

		entries, err := board.Top(ctx, 10)
		require.NoError(t, err)

		require.Len(t, entries, 3)
		assert.Equal(t, fast, entries[0].RunID)
		assert.Equal(t, 12, entries[0].FastMoves)
		assert.Equal(t, mid, entries[1].RunID)
		assert.Equal(t, slow, entries[2].RunID)
	})

	t.Run("board is trimmed to its size", func(t *testing.T) {
		board, _ := newTestBoard(t, 2)

		require.NoError(t, board.Record(ctx, uuid.New(), 30))
		require.NoError(t, board.Record(ctx, uuid.New(), 10))
		require.NoError(t, board.Record(ctx, uuid.New(), 20))

		entries, err := board.Top(ctx, 10)
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, 10, entries[0].FastMoves)
		assert.Equal(t, 20, entries[1].FastMoves)
	})

	t.Run("re-recording a run updates its score", func(t *testing.T) {
		board, _ := newTestBoard(t, 10)

		id := uuid.New()
		require.NoError(t, board.Record(ctx, id, 40))
		require.NoError(t, board.Record(ctx, id, 15))

		entries, err := board.Top(ctx, 10)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, 15, entries[0].FastMoves)
	})

	t.Run("empty board lists nothing", func(t *testing.T) {
		board, _ := newTestBoard(t, 10)

		entries, err := board.Top(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
