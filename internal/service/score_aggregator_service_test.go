package service

import (
	"testing"

	"github.com/dharunks/insightiq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answeredQuestion(confidence, clarity, score, sentiment float64, improvements ...string) model.Question {
	text := "some answer"
	return model.Question{
		ResponseText: &text,
		Analysis: &model.AnalysisResult{
			Kind:                  model.AnalysisKindText,
			Confidence:            model.Confidence{Score: confidence},
			Communication:         model.Communication{Clarity: clarity},
			AnswerScore:           model.AnswerScore{Score: score},
			Sentiment:             model.Sentiment{Overall: sentiment},
			SuggestedImprovements: improvements,
		},
	}
}

func TestAggregateNoAnsweredQuestions(t *testing.T) {
	agg := NewScoreAggregatorService()

	overall := agg.Aggregate(nil)
	assert.Equal(t, model.GradeNoData, overall.Grade)
	assert.Zero(t, overall.AverageConfidence)
	assert.Zero(t, overall.AverageClarity)
	assert.Zero(t, overall.AnswerScore)
	assert.Zero(t, overall.SentimentScore)
	assert.Equal(t, 0, overall.AnsweredQuestions)

	// Questions without responses count toward the total only.
	overall = agg.Aggregate([]model.Question{{Text: "q1"}, {Text: "q2"}})
	assert.Equal(t, model.GradeNoData, overall.Grade)
	assert.Equal(t, 0, overall.AnsweredQuestions)
	assert.Equal(t, 2, overall.TotalQuestions)
	assert.Empty(t, overall.StrongestSkill)
	assert.Empty(t, overall.ImprovementArea)
}

func TestAggregateAverages(t *testing.T) {
	agg := NewScoreAggregatorService()

	questions := []model.Question{
		answeredQuestion(8, 6, 7, 0.5),
		answeredQuestion(6, 8, 5, -0.1),
		{Text: "unanswered"},
	}

	overall := agg.Aggregate(questions)
	assert.Equal(t, 2, overall.AnsweredQuestions)
	assert.Equal(t, 3, overall.TotalQuestions)
	assert.InDelta(t, 7.0, overall.AverageConfidence, 1e-9)
	assert.InDelta(t, 7.0, overall.AverageClarity, 1e-9)
	assert.InDelta(t, 6.0, overall.AnswerScore, 1e-9)
	assert.InDelta(t, 0.2, overall.SentimentScore, 1e-9)
	// Mean of confidence and clarity is 7.0 -> B.
	assert.Equal(t, "B", overall.Grade)
}

func TestAggregateResponseWithoutAnalysisIsNotAnswered(t *testing.T) {
	agg := NewScoreAggregatorService()

	text := "stored but never scored"
	questions := []model.Question{
		{Text: "q1", ResponseText: &text},
		answeredQuestion(9, 9, 9, 0.8),
	}

	overall := agg.Aggregate(questions)
	assert.Equal(t, 1, overall.AnsweredQuestions)
	assert.InDelta(t, 9.0, overall.AverageConfidence, 1e-9)
}

func TestGradeBreakpoints(t *testing.T) {
	agg := NewScoreAggregatorService()

	cases := []struct {
		score float64
		grade string
	}{
		{10, "A+"},
		{9.0, "A+"},
		{8.9, "A"},
		{8.5, "A"},
		{8.2, "A-"},
		{7.6, "B+"},
		{7.0, "B"},
		{6.7, "B-"},
		{6.0, "C+"},
		{5.5, "C"},
		{5.0, "C-"},
		{4.9, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, agg.GradeFor(tc.score), "score %v", tc.score)
	}
}

func TestSkillExtremes(t *testing.T) {
	strongest, weakest := skillExtremes(8, 6, 4)
	assert.Equal(t, model.SkillConfidence, strongest)
	assert.Equal(t, model.SkillSentiment, weakest)

	strongest, weakest = skillExtremes(3, 9, 5)
	assert.Equal(t, model.SkillClarity, strongest)
	assert.Equal(t, model.SkillConfidence, weakest)

	// Ties resolve to the higher-priority skill on both ends.
	strongest, weakest = skillExtremes(7, 7, 7)
	assert.Equal(t, model.SkillConfidence, strongest)
	assert.Equal(t, model.SkillConfidence, weakest)

	strongest, weakest = skillExtremes(5, 8, 8)
	assert.Equal(t, model.SkillClarity, strongest)
}

func TestBuildFeedbackDeduplicatesRecommendations(t *testing.T) {
	agg := NewScoreAggregatorService()

	questions := []model.Question{
		answeredQuestion(7, 7, 7, 0, "Slow down", "Use concrete examples"),
		answeredQuestion(7, 7, 7, 0, "Use concrete examples", "Quantify your impact"),
		{Text: "unanswered"},
	}
	overall := agg.Aggregate(questions)

	feedback := agg.BuildFeedback(questions, overall)
	require.NotEmpty(t, feedback.Summary)
	assert.Contains(t, feedback.Summary, "2 of 3")
	assert.Equal(t, []string{"Slow down", "Use concrete examples", "Quantify your impact"}, feedback.Recommendations)
}

func TestBuildFeedbackNoAnswers(t *testing.T) {
	agg := NewScoreAggregatorService()

	overall := agg.Aggregate([]model.Question{{Text: "q1"}})
	feedback := agg.BuildFeedback([]model.Question{{Text: "q1"}}, overall)
	assert.NotEmpty(t, feedback.Summary)
	assert.Empty(t, feedback.Recommendations)
}
