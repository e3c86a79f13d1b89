package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/dharunks/insightiq/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const leaderboardKey = "leaderboard:overall"

// LeaderboardService keeps a redis sorted set of users ranked by the mean of
// their confidence and clarity projections. With no redis configured it
// degrades to a no-op so the rest of the API keeps working.
type LeaderboardService interface {
	Enabled() bool
	Record(ctx context.Context, userID uint, stats model.UserStats) error
	Top(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error)
}

type leaderboardService struct {
	rdb      *redis.Client
	userRepo repository.UserRepository
}

func NewLeaderboardService(rdb *redis.Client, userRepo repository.UserRepository) LeaderboardService {
	if rdb == nil {
		log.Warn().Msg("Redis is not configured; leaderboard is disabled")
	}
	return &leaderboardService{rdb: rdb, userRepo: userRepo}
}

func (s *leaderboardService) Enabled() bool { return s.rdb != nil }

func (s *leaderboardService) Record(ctx context.Context, userID uint, stats model.UserStats) error {
	if s.rdb == nil {
		return nil
	}
	score := (stats.AverageConfidence + stats.AverageClarity) / 2
	return s.rdb.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  score,
		Member: strconv.FormatUint(uint64(userID), 10),
	}).Err()
}

func (s *leaderboardService) Top(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error) {
	if s.rdb == nil {
		return nil, fmt.Errorf("leaderboard is disabled: redis is not configured")
	}
	if limit < 1 {
		limit = 10
	}

	members, err := s.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(members))
	var ids []uint
	for rank, m := range members {
		idStr, _ := m.Member.(string)
		id64, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			log.Warn().Str("member", idStr).Msg("Skipping malformed leaderboard member")
			continue
		}
		entries = append(entries, dto.LeaderboardEntryDTO{
			Rank:   rank + 1,
			UserID: uint(id64),
			Score:  m.Score,
		})
		ids = append(ids, uint(id64))
	}

	// Usernames are decoration; a lookup failure degrades to IDs only.
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve leaderboard usernames")
		return entries, nil
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	for i := range entries {
		entries[i].Username = names[entries[i].UserID]
	}
	return entries, nil
}
