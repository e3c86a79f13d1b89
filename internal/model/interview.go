package model

import (
	"time"

	"gorm.io/gorm"
)

type InterviewStatus string

const (
	StatusDraft      InterviewStatus = "draft"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
)

type InterviewType string

const (
	TypeTechnical   InterviewType = "technical"
	TypeBehavioral  InterviewType = "behavioral"
	TypeHR          InterviewType = "hr"
	TypeSituational InterviewType = "situational"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Interview owns the question sequence and the lifecycle state machine
// (draft -> in_progress -> completed, never backward). OverallAnalysis and
// AIFeedback are written exactly once, at completion.
type Interview struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	UserID          uint             `json:"user_id" gorm:"not null;index"`
	Title           string           `json:"title" gorm:"not null"`
	Type            InterviewType    `json:"type" gorm:"not null"`
	Difficulty      Difficulty       `json:"difficulty" gorm:"not null"`
	Status          InterviewStatus  `json:"status" gorm:"not null;default:'draft';index"`
	Questions       []Question       `json:"questions,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	Duration        *int             `json:"duration,omitempty"` // seconds between start and completion
	OverallAnalysis *OverallAnalysis `json:"overall_analysis,omitempty" gorm:"type:jsonb;serializer:json"`
	AIFeedback      *AIFeedback      `json:"ai_feedback,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

// AnsweredQuestions returns the questions that carry both a response and an
// analysis, in presentation order.
func (i *Interview) AnsweredQuestions() []Question {
	var answered []Question
	for _, q := range i.Questions {
		if q.Answered() {
			answered = append(answered, q)
		}
	}
	return answered
}

func ValidInterviewType(t InterviewType) bool {
	switch t {
	case TypeTechnical, TypeBehavioral, TypeHR, TypeSituational:
		return true
	}
	return false
}

func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
