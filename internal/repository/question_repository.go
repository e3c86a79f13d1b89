package repository

import (
	"github.com/dharunks/insightiq/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// UpdateResponse overwrites the response fields AND clears any prior
	// analysis in one small update, so the raw submission is durable before
	// the analyzer is ever called.
	UpdateResponse(question *model.Question) error
	// UpdateAnalysis attaches the analysis in a second, separate update.
	UpdateAnalysis(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) UpdateResponse(question *model.Question) error {
	return r.db.Model(question).
		Select("response_text", "audio_url", "video_url", "response_duration", "responded_at", "analysis").
		Updates(map[string]interface{}{
			"response_text":     question.ResponseText,
			"audio_url":         question.AudioURL,
			"video_url":         question.VideoURL,
			"response_duration": question.ResponseDuration,
			"responded_at":      question.RespondedAt,
			"analysis":          nil,
		}).Error
}

func (r *questionRepository) UpdateAnalysis(question *model.Question) error {
	return r.db.Model(question).Update("analysis", question.Analysis).Error
}
