package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/dharunks/insightiq/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// trendWindow is the number of interviews in each of the two comparison
// windows for the improvement trend; the trend needs both windows full.
const trendWindow = 5

// ProfileService owns the cached stats projection. The projection is
// recomputed from the full completed-interview set on every fetch and after
// every completion; the stored value is only a cache.
type ProfileService interface {
	GetStats(userID uint) (*dto.UserStatsDTO, error)
	RefreshStats(userID uint) (model.UserStats, []model.Interview, error)
	ComputeStats(completed []model.Interview) model.UserStats
	GetBadges(userID uint) ([]dto.BadgeDTO, error)
}

type profileService struct {
	userRepo      repository.UserRepository
	interviewRepo repository.InterviewRepository
	badgeService  BadgeService
}

func NewProfileService(userRepo repository.UserRepository, interviewRepo repository.InterviewRepository, badgeService BadgeService) ProfileService {
	return &profileService{
		userRepo:      userRepo,
		interviewRepo: interviewRepo,
		badgeService:  badgeService,
	}
}

func (s *profileService) GetStats(userID uint) (*dto.UserStatsDTO, error) {
	stats, _, err := s.RefreshStats(userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsDTO{UserID: userID, Stats: stats}, nil
}

// RefreshStats recomputes the projection and writes it back to the user row.
// A stale cache is tolerable, so a failed write-back is logged, not fatal.
func (s *profileService) RefreshStats(userID uint) (model.UserStats, []model.Interview, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.UserStats{}, nil, &apperr.NotFoundError{Resource: "user", ID: userID}
		}
		return model.UserStats{}, nil, &apperr.PersistenceError{Err: err}
	}

	completed, err := s.interviewRepo.FindCompletedByUser(userID)
	if err != nil {
		return model.UserStats{}, nil, &apperr.PersistenceError{Err: fmt.Errorf("loading completed interviews: %w", err)}
	}

	stats := s.ComputeStats(completed)
	if err := s.userRepo.UpdateStats(userID, &stats); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to cache stats projection")
	}
	return stats, completed, nil
}

// ComputeStats is the pure projection over a user's completed interviews.
func (s *profileService) ComputeStats(completed []model.Interview) model.UserStats {
	var stats model.UserStats
	stats.TotalInterviews = len(completed)

	var confidenceSum, claritySum float64
	analyzed := 0
	for _, iv := range completed {
		if iv.Type == model.TypeTechnical {
			stats.TechnicalInterviews++
		}
		if iv.OverallAnalysis == nil {
			continue
		}
		confidenceSum += iv.OverallAnalysis.AverageConfidence
		claritySum += iv.OverallAnalysis.AverageClarity
		analyzed++
	}
	if analyzed > 0 {
		stats.AverageConfidence = confidenceSum / float64(analyzed)
		stats.AverageClarity = claritySum / float64(analyzed)
	}

	stats.ImprovementTrend = improvementTrend(completed)
	return stats
}

// improvementTrend is the percent change of the mean confidence of the last
// five completed interviews against the previous five. Fewer than ten
// completed interviews always yields 0. A zero previous-window average also
// yields 0 rather than an inflated percentage.
func improvementTrend(completed []model.Interview) float64 {
	var analyzed []model.Interview
	for _, iv := range completed {
		if iv.OverallAnalysis != nil && iv.CompletedAt != nil {
			analyzed = append(analyzed, iv)
		}
	}
	if len(analyzed) < 2*trendWindow {
		return 0
	}

	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].CompletedAt.Before(*analyzed[j].CompletedAt)
	})

	recent := analyzed[len(analyzed)-trendWindow:]
	previous := analyzed[len(analyzed)-2*trendWindow : len(analyzed)-trendWindow]

	recentAvg := meanConfidence(recent)
	previousAvg := meanConfidence(previous)
	if previousAvg == 0 {
		return 0
	}
	return (recentAvg - previousAvg) / previousAvg * 100
}

func meanConfidence(interviews []model.Interview) float64 {
	var sum float64
	for _, iv := range interviews {
		sum += iv.OverallAnalysis.AverageConfidence
	}
	return sum / float64(len(interviews))
}

func (s *profileService) GetBadges(userID uint) ([]dto.BadgeDTO, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Resource: "user", ID: userID}
		}
		return nil, &apperr.PersistenceError{Err: err}
	}

	badges, err := s.badgeService.ListBadges(userID)
	if err != nil {
		return nil, &apperr.PersistenceError{Err: err}
	}

	dtos := make([]dto.BadgeDTO, 0, len(badges))
	for _, b := range badges {
		var d dto.BadgeDTO
		if err := copier.Copy(&d, &b); err != nil {
			return nil, fmt.Errorf("error preparing badge response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
