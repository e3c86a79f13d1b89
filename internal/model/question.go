package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is embedded in an interview and never exists independently.
// Response fields hold at most one response; a later submission fully
// replaces both the response and its analysis. Invariant: Analysis is only
// ever set while a response is present.
type Question struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	InterviewID      uint            `json:"interview_id" gorm:"not null;index"`
	Text             string          `json:"text" gorm:"type:text;not null"`
	Category         string          `json:"category" gorm:"not null"`
	OrderInInterview int             `json:"order_in_interview" gorm:"not null"`
	ResponseText     *string         `json:"response_text,omitempty" gorm:"type:text"`
	AudioURL         *string         `json:"audio_url,omitempty"`
	VideoURL         *string         `json:"video_url,omitempty"`
	ResponseDuration *float64        `json:"response_duration,omitempty"` // seconds
	RespondedAt      *time.Time      `json:"responded_at,omitempty"`
	Analysis         *AnalysisResult `json:"analysis,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (q *Question) HasResponse() bool {
	return q.ResponseText != nil || q.AudioURL != nil || q.VideoURL != nil
}

func (q *Question) Answered() bool {
	return q.HasResponse() && q.Analysis != nil
}
