package service

import (
	"testing"

	"github.com/dharunks/insightiq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeNames(defs []BadgeDefinition) []string {
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	return names
}

func TestEvaluateAwardsMatchingBadges(t *testing.T) {
	evaluator := NewBadgeEvaluator(DefaultBadgeDefinitions())

	stats := model.UserStats{
		TotalInterviews:     5,
		TechnicalInterviews: 2,
		AverageConfidence:   8.5,
		AverageClarity:      6.0,
	}

	earned := evaluator.Evaluate(stats, nil, map[string]bool{})
	assert.Equal(t, []string{"First Steps", "Getting Serious", "Confident Speaker"}, badgeNames(earned))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	evaluator := NewBadgeEvaluator(DefaultBadgeDefinitions())
	stats := model.UserStats{TotalInterviews: 1}

	first := evaluator.Evaluate(stats, nil, map[string]bool{})
	require.NotEmpty(t, first)

	existing := make(map[string]bool)
	for _, def := range first {
		existing[def.Name] = true
	}

	// Re-running against the persisted names yields nothing new.
	second := evaluator.Evaluate(stats, nil, existing)
	assert.Empty(t, second)
}

func TestEvaluateAceSessionReadsInterviews(t *testing.T) {
	evaluator := NewBadgeEvaluator(DefaultBadgeDefinitions())

	completed := []model.Interview{
		{OverallAnalysis: &model.OverallAnalysis{Grade: "B+"}},
		{OverallAnalysis: &model.OverallAnalysis{Grade: "A-"}},
	}
	earned := evaluator.Evaluate(model.UserStats{}, completed, map[string]bool{})
	assert.Contains(t, badgeNames(earned), "Ace Session")

	earned = evaluator.Evaluate(model.UserStats{}, []model.Interview{
		{OverallAnalysis: &model.OverallAnalysis{Grade: "B+"}},
		{OverallAnalysis: nil},
	}, map[string]bool{})
	assert.NotContains(t, badgeNames(earned), "Ace Session")
}

func TestEvaluateCustomDefinitionOrder(t *testing.T) {
	evaluator := NewBadgeEvaluator([]BadgeDefinition{
		{Name: "second", Predicate: func(model.UserStats, []model.Interview) bool { return true }},
		{Name: "first", Predicate: func(model.UserStats, []model.Interview) bool { return true }},
		{Name: "never", Predicate: func(model.UserStats, []model.Interview) bool { return false }},
	})

	earned := evaluator.Evaluate(model.UserStats{}, nil, map[string]bool{})
	assert.Equal(t, []string{"second", "first"}, badgeNames(earned))
}
