package dto

import (
	"time"

	"github.com/dharunks/insightiq/internal/model"
)

type UserCreateDTO struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserStatsDTO struct {
	UserID uint            `json:"user_id"`
	Stats  model.UserStats `json:"stats"`
}

type BadgeDTO struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	EarnedAt    time.Time `json:"earned_at"`
}

type LeaderboardEntryDTO struct {
	Rank     int     `json:"rank"`
	UserID   uint    `json:"user_id"`
	Username string  `json:"username,omitempty"`
	Score    float64 `json:"score"`
}
