package service

import (
	"testing"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestions(t *testing.T) {
	bank := NewQuestionBankService()

	questions, err := bank.Generate(model.TypeTechnical, model.DifficultyBeginner, 3)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	seen := make(map[string]bool)
	for i, q := range questions {
		assert.Equal(t, i+1, q.OrderInInterview)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Category)
		assert.False(t, seen[q.Text], "question %q selected twice", q.Text)
		seen[q.Text] = true
	}
}

func TestGenerateCoversAllTypesAndDifficulties(t *testing.T) {
	bank := NewQuestionBankService()

	types := []model.InterviewType{model.TypeTechnical, model.TypeBehavioral, model.TypeHR, model.TypeSituational}
	difficulties := []model.Difficulty{model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced}
	for _, ty := range types {
		for _, d := range difficulties {
			questions, err := bank.Generate(ty, d, 1)
			require.NoError(t, err, "%s/%s", ty, d)
			require.Len(t, questions, 1)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	bank := NewQuestionBankService()

	_, err := bank.Generate(model.TypeTechnical, model.DifficultyBeginner, 0)
	assert.True(t, apperr.IsValidation(err))

	_, err = bank.Generate(model.InterviewType("trivia"), model.DifficultyBeginner, 1)
	assert.True(t, apperr.IsValidation(err))

	_, err = bank.Generate(model.TypeTechnical, model.Difficulty("impossible"), 1)
	assert.True(t, apperr.IsValidation(err))

	_, err = bank.Generate(model.TypeTechnical, model.DifficultyBeginner, 100)
	assert.True(t, apperr.IsValidation(err))
}
