package service

import (
	"fmt"
	"strings"

	"github.com/dharunks/insightiq/internal/model"
)

// ScoreAggregatorService reduces an interview's per-question analyses into
// the interview-level rollup. All functions are pure.
type ScoreAggregatorService interface {
	Aggregate(questions []model.Question) model.OverallAnalysis
	BuildFeedback(questions []model.Question, overall model.OverallAnalysis) model.AIFeedback
	GradeFor(score float64) string
}

type scoreAggregatorService struct{}

func NewScoreAggregatorService() ScoreAggregatorService {
	return &scoreAggregatorService{}
}

// gradeBreakpoints is the single canonical grade table, applied to both
// per-answer grades and the interview rollup. The rollup grade is keyed on
// the mean of average confidence and average clarity.
var gradeBreakpoints = []struct {
	min   float64
	grade string
}{
	{9.0, "A+"},
	{8.5, "A"},
	{8.0, "A-"},
	{7.5, "B+"},
	{7.0, "B"},
	{6.5, "B-"},
	{6.0, "C+"},
	{5.5, "C"},
	{5.0, "C-"},
}

func resolveGrade(score float64) string {
	for _, bp := range gradeBreakpoints {
		if score >= bp.min {
			return bp.grade
		}
	}
	return "F"
}

func (s *scoreAggregatorService) GradeFor(score float64) string {
	return resolveGrade(score)
}

func (s *scoreAggregatorService) Aggregate(questions []model.Question) model.OverallAnalysis {
	overall := model.OverallAnalysis{
		TotalQuestions: len(questions),
		Grade:          model.GradeNoData,
	}

	var answered []model.Question
	for _, q := range questions {
		if q.Answered() {
			answered = append(answered, q)
		}
	}
	overall.AnsweredQuestions = len(answered)
	if len(answered) == 0 {
		// No data: all numeric fields stay zero; the N/A grade keeps this
		// distinguishable from a genuine F.
		return overall
	}

	var confidence, clarity, answerScore, sentiment float64
	for _, q := range answered {
		confidence += q.Analysis.Confidence.Score
		clarity += q.Analysis.Communication.Clarity
		answerScore += q.Analysis.AnswerScore.Score
		sentiment += q.Analysis.Sentiment.Overall
	}
	n := float64(len(answered))
	overall.AverageConfidence = confidence / n
	overall.AverageClarity = clarity / n
	overall.AnswerScore = answerScore / n
	overall.SentimentScore = sentiment / n

	overall.Grade = s.GradeFor((overall.AverageConfidence + overall.AverageClarity) / 2)
	overall.StrongestSkill, overall.ImprovementArea = skillExtremes(
		overall.AverageConfidence, overall.AverageClarity, overall.SentimentScore)

	return overall
}

// skillExtremes returns the arg-max and arg-min skill labels. The slice is
// ordered by tie-break priority (confidence > clarity > sentiment) and only
// a strict improvement replaces the candidate, so ties resolve to the
// higher-priority skill.
func skillExtremes(confidence, clarity, sentiment float64) (strongest, weakest string) {
	skills := []struct {
		label string
		mean  float64
	}{
		{model.SkillConfidence, confidence},
		{model.SkillClarity, clarity},
		{model.SkillSentiment, sentiment},
	}

	strongest, weakest = skills[0].label, skills[0].label
	maxMean, minMean := skills[0].mean, skills[0].mean
	for _, sk := range skills[1:] {
		if sk.mean > maxMean {
			maxMean, strongest = sk.mean, sk.label
		}
		if sk.mean < minMean {
			minMean, weakest = sk.mean, sk.label
		}
	}
	return strongest, weakest
}

// BuildFeedback assembles the free-text companion to the rollup: a short
// summary plus the deduplicated per-question improvement suggestions in
// first-seen order.
func (s *scoreAggregatorService) BuildFeedback(questions []model.Question, overall model.OverallAnalysis) model.AIFeedback {
	if overall.AnsweredQuestions == 0 {
		return model.AIFeedback{
			Summary: "No questions were answered in this interview, so there is nothing to assess yet. Start a new session and respond to at least one question to receive feedback.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You answered %d of %d questions and earned an overall grade of %s. ",
		overall.AnsweredQuestions, overall.TotalQuestions, overall.Grade)
	fmt.Fprintf(&b, "Your strongest area was %s, while %s has the most room to grow.",
		overall.StrongestSkill, overall.ImprovementArea)

	seen := make(map[string]bool)
	var recommendations []string
	for _, q := range questions {
		if !q.Answered() {
			continue
		}
		for _, imp := range q.Analysis.SuggestedImprovements {
			imp = strings.TrimSpace(imp)
			if imp == "" || seen[imp] {
				continue
			}
			seen[imp] = true
			recommendations = append(recommendations, imp)
		}
	}

	return model.AIFeedback{
		Summary:         b.String(),
		Recommendations: recommendations,
	}
}
