package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T, users *fakeUserRepo) LeaderboardService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewLeaderboardService(rdb, users)
}

func TestLeaderboardRanking(t *testing.T) {
	users := newFakeUserRepo()
	alice := users.add("alice")
	bob := users.add("bob")
	carol := users.add("carol")

	lb := newTestLeaderboard(t, users)
	ctx := context.Background()

	require.NoError(t, lb.Record(ctx, alice, model.UserStats{AverageConfidence: 6, AverageClarity: 8}))
	require.NoError(t, lb.Record(ctx, bob, model.UserStats{AverageConfidence: 9, AverageClarity: 9}))
	require.NoError(t, lb.Record(ctx, carol, model.UserStats{AverageConfidence: 4, AverageClarity: 4}))

	entries, err := lb.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "bob", entries[0].Username)
	assert.InDelta(t, 9.0, entries[0].Score, 1e-9)
	assert.Equal(t, "alice", entries[1].Username)
	assert.InDelta(t, 7.0, entries[1].Score, 1e-9)
	assert.Equal(t, "carol", entries[2].Username)
}

func TestLeaderboardRecordOverwritesScore(t *testing.T) {
	users := newFakeUserRepo()
	alice := users.add("alice")

	lb := newTestLeaderboard(t, users)
	ctx := context.Background()

	require.NoError(t, lb.Record(ctx, alice, model.UserStats{AverageConfidence: 4, AverageClarity: 4}))
	require.NoError(t, lb.Record(ctx, alice, model.UserStats{AverageConfidence: 8, AverageClarity: 8}))

	entries, err := lb.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, 8.0, entries[0].Score, 1e-9)
}

func TestLeaderboardLimit(t *testing.T) {
	users := newFakeUserRepo()
	lb := newTestLeaderboard(t, users)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		id := users.add("user")
		require.NoError(t, lb.Record(ctx, id, model.UserStats{AverageConfidence: float64(i), AverageClarity: float64(i)}))
	}

	entries, err := lb.Top(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLeaderboardDisabledWithoutRedis(t *testing.T) {
	lb := NewLeaderboardService(nil, newFakeUserRepo())

	assert.False(t, lb.Enabled())
	assert.NoError(t, lb.Record(context.Background(), 1, model.UserStats{}))

	_, err := lb.Top(context.Background(), 10)
	assert.Error(t, err)
}
