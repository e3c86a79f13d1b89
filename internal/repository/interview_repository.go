package repository

import (
	"time"

	"github.com/dharunks/insightiq/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindByIDWithQuestions(id uint) (*model.Interview, error)
	ListByUser(userID uint) ([]model.Interview, error)
	FindCompletedByUser(userID uint) ([]model.Interview, error)
	// MarkInProgress performs the conditional draft -> in_progress transition.
	// It reports false when the interview was not in draft, without touching
	// the row.
	MarkInProgress(id uint, startedAt time.Time) (bool, error)
	// MarkCompleted performs the conditional in_progress -> completed
	// transition, writing the timestamps, duration and the derived analysis
	// in a single atomic update. It reports false when the interview was not
	// in progress, in which case nothing is recomputed or overwritten.
	MarkCompleted(id uint, completedAt time.Time, duration int, overall *model.OverallAnalysis, feedback *model.AIFeedback) (bool, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	// GORM creates the associated questions along with the interview.
	return r.db.Create(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithQuestions(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_interview ASC")
	}).First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) ListByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_interview ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) FindCompletedByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.
		Where("user_id = ? AND status = ?", userID, model.StatusCompleted).
		Order("completed_at ASC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) MarkInProgress(id uint, startedAt time.Time) (bool, error) {
	res := r.db.Model(&model.Interview{}).
		Where("id = ? AND status = ?", id, model.StatusDraft).
		Updates(map[string]interface{}{
			"status":     model.StatusInProgress,
			"started_at": startedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *interviewRepository) MarkCompleted(id uint, completedAt time.Time, duration int, overall *model.OverallAnalysis, feedback *model.AIFeedback) (bool, error) {
	// Struct-based update so the jsonb serializers apply to both blobs.
	res := r.db.Model(&model.Interview{}).
		Where("id = ? AND status = ?", id, model.StatusInProgress).
		Select("status", "completed_at", "duration", "overall_analysis", "ai_feedback").
		Updates(&model.Interview{
			Status:          model.StatusCompleted,
			CompletedAt:     &completedAt,
			Duration:        &duration,
			OverallAnalysis: overall,
			AIFeedback:      feedback,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
