package service

import (
	"time"

	"github.com/dharunks/insightiq/internal/model"
	"github.com/dharunks/insightiq/internal/repository"
	"github.com/rs/zerolog/log"
)

// BadgeDefinition pairs a badge name with the predicate that earns it.
// Predicates read only the stats projection and the completed-interview
// list; there is no hidden state.
type BadgeDefinition struct {
	Name        string
	Description string
	Predicate   func(stats model.UserStats, completed []model.Interview) bool
}

// BadgeEvaluator walks an immutable, ordered definition table. The table is
// injected so tests can run against their own criteria.
type BadgeEvaluator struct {
	defs []BadgeDefinition
}

func NewBadgeEvaluator(defs []BadgeDefinition) *BadgeEvaluator {
	return &BadgeEvaluator{defs: defs}
}

// Evaluate returns the definitions newly earned given the current stats and
// completed interviews. Names already in existingNames are never re-emitted,
// so running Evaluate again after persisting its output yields nothing.
func (e *BadgeEvaluator) Evaluate(stats model.UserStats, completed []model.Interview, existingNames map[string]bool) []BadgeDefinition {
	var earned []BadgeDefinition
	for _, def := range e.defs {
		if existingNames[def.Name] {
			continue
		}
		if def.Predicate(stats, completed) {
			earned = append(earned, def)
		}
	}
	return earned
}

// DefaultBadgeDefinitions is the fixed badge-criteria table, in award order.
func DefaultBadgeDefinitions() []BadgeDefinition {
	return []BadgeDefinition{
		{
			Name:        "First Steps",
			Description: "Complete your first interview",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.TotalInterviews >= 1
			},
		},
		{
			Name:        "Getting Serious",
			Description: "Complete 5 interviews",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.TotalInterviews >= 5
			},
		},
		{
			Name:        "Interview Veteran",
			Description: "Complete 25 interviews",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.TotalInterviews >= 25
			},
		},
		{
			Name:        "Tech Specialist",
			Description: "Complete 10 technical interviews",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.TechnicalInterviews >= 10
			},
		},
		{
			Name:        "Confident Speaker",
			Description: "Reach an average confidence of 8 or higher",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.TotalInterviews > 0 && stats.AverageConfidence >= 8
			},
		},
		{
			Name:        "Clear Communicator",
			Description: "Reach an average clarity of 8 or higher",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.TotalInterviews > 0 && stats.AverageClarity >= 8
			},
		},
		{
			Name:        "Rising Star",
			Description: "Improve your confidence trend by 10% or more",
			Predicate: func(stats model.UserStats, _ []model.Interview) bool {
				return stats.ImprovementTrend >= 10
			},
		},
		{
			Name:        "Ace Session",
			Description: "Finish an interview with an A-range grade",
			Predicate: func(_ model.UserStats, completed []model.Interview) bool {
				for _, iv := range completed {
					if iv.OverallAnalysis == nil {
						continue
					}
					switch iv.OverallAnalysis.Grade {
					case "A+", "A", "A-":
						return true
					}
				}
				return false
			},
		},
	}
}

// BadgeService evaluates and persists badge awards for a user.
type BadgeService interface {
	AwardBadges(userID uint, stats model.UserStats, completed []model.Interview) ([]model.Badge, error)
	ListBadges(userID uint) ([]model.Badge, error)
}

type badgeService struct {
	badgeRepo repository.BadgeRepository
	evaluator *BadgeEvaluator
}

func NewBadgeService(badgeRepo repository.BadgeRepository, evaluator *BadgeEvaluator) BadgeService {
	return &badgeService{badgeRepo: badgeRepo, evaluator: evaluator}
}

func (s *badgeService) AwardBadges(userID uint, stats model.UserStats, completed []model.Interview) ([]model.Badge, error) {
	existing, err := s.badgeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	existingNames := make(map[string]bool, len(existing))
	for _, b := range existing {
		existingNames[b.Name] = true
	}

	now := time.Now()
	var awarded []model.Badge
	for _, def := range s.evaluator.Evaluate(stats, completed, existingNames) {
		badge := model.Badge{
			UserID:      userID,
			Name:        def.Name,
			Description: def.Description,
			EarnedAt:    now,
		}
		if err := s.badgeRepo.Create(&badge); err != nil {
			log.Error().Err(err).Uint("userID", userID).Str("badge", def.Name).Msg("Failed to persist badge award")
			continue
		}
		awarded = append(awarded, badge)
	}
	return awarded, nil
}

func (s *badgeService) ListBadges(userID uint) ([]model.Badge, error) {
	return s.badgeRepo.FindByUser(userID)
}
