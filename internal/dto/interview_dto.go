package dto

import (
	"time"

	"github.com/dharunks/insightiq/internal/model"
)

// InterviewCreateDTO is the request body for creating a draft interview.
type InterviewCreateDTO struct {
	UserID        uint                `json:"user_id" binding:"required"`
	Title         string              `json:"title" binding:"required"`
	Type          model.InterviewType `json:"type" binding:"required,oneof=technical behavioral hr situational"`
	Difficulty    model.Difficulty    `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	QuestionCount int                 `json:"question_count" binding:"required,min=1"`
}

// QuestionDTO is used for displaying question details, including any
// response and per-question analysis.
type QuestionDTO struct {
	ID               uint                  `json:"id"`
	InterviewID      uint                  `json:"interview_id"`
	Text             string                `json:"text"`
	Category         string                `json:"category"`
	OrderInInterview int                   `json:"order_in_interview"`
	ResponseText     *string               `json:"response_text,omitempty"`
	AudioURL         *string               `json:"audio_url,omitempty"`
	VideoURL         *string               `json:"video_url,omitempty"`
	ResponseDuration *float64              `json:"response_duration,omitempty"`
	RespondedAt      *time.Time            `json:"responded_at,omitempty"`
	Analysis         *model.AnalysisResult `json:"analysis,omitempty"`
}

// InterviewDetailDTO is the full interview including per-question analysis.
type InterviewDetailDTO struct {
	ID              uint                   `json:"id"`
	UserID          uint                   `json:"user_id"`
	Title           string                 `json:"title"`
	Type            model.InterviewType    `json:"type"`
	Difficulty      model.Difficulty       `json:"difficulty"`
	Status          model.InterviewStatus  `json:"status"`
	Questions       []QuestionDTO          `json:"questions,omitempty"`
	StartedAt       *time.Time             `json:"started_at,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	Duration        *int                   `json:"duration,omitempty"`
	OverallAnalysis *model.OverallAnalysis `json:"overall_analysis,omitempty"`
	AIFeedback      *model.AIFeedback      `json:"ai_feedback,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// InterviewSummaryDTO is used when listing a user's interviews.
type InterviewSummaryDTO struct {
	ID            uint                  `json:"id"`
	Title         string                `json:"title"`
	Type          model.InterviewType   `json:"type"`
	Difficulty    model.Difficulty      `json:"difficulty"`
	Status        model.InterviewStatus `json:"status"`
	QuestionCount int                   `json:"question_count"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	Grade         string                `json:"grade,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// QuestionResultDTO is the response submission result. AnalyzerError is set,
// and Analysis nil, when the response was stored but scoring failed.
type QuestionResultDTO struct {
	Question      QuestionDTO           `json:"question"`
	Analysis      *model.AnalysisResult `json:"analysis,omitempty"`
	AnalyzerError string                `json:"analyzer_error,omitempty"`
}
