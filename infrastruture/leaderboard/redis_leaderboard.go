package leaderboard

import (
	"context"

	"github.com/beka-birhanu/micromouse/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const boardKey = "micromouse:leaderboard"

// RedisLeaderboard ranks runs in a Redis sorted set keyed by fast-path
// length, shortest first. The set is trimmed to a fixed size so only
// the best runs survive.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	size   int64
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and board size.
func NewRedisLeaderboard(client *redis.Client, size int64) (i.Leaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		size:   size,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record ranks a completed run and trims entries beyond the board size.
func (rl *RedisLeaderboard) Record(ctx context.Context, runID uuid.UUID, fastMoves int) error {
	mutex := rl.locker.NewMutex(boardKey + ":record_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	_, err := rl.client.ZAdd(ctx, boardKey, redis.Z{Score: float64(fastMoves), Member: runID.String()}).Result()
	if err != nil {
		return err
	}

	// Drop everything ranked past the board size
	if rl.client.ZCard(ctx, boardKey).Val() > rl.size {
		_ = rl.client.ZRemRangeByRank(ctx, boardKey, rl.size, -1).Err()
	}

	return nil
}

// Top lists up to count best entries, shortest fast path first.
func (rl *RedisLeaderboard) Top(ctx context.Context, count int64) ([]i.LeaderboardEntry, error) {
	if count > rl.size {
		count = rl.size
	}

	members, err := rl.client.ZRangeWithScores(ctx, boardKey, 0, count-1).Result()
	if err != nil {
		return nil, err
	}

	var entries []i.LeaderboardEntry
	for _, m := range members {
		id, err := uuid.Parse(m.Member.(string))
		if err != nil {
			continue
		}
		entries = append(entries, i.LeaderboardEntry{RunID: id, FastMoves: int(m.Score)})
	}
	return entries, nil
}
