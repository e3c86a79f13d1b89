package model

import "time"

// Badge records are append-only; a badge, once earned, is never removed.
// The (user_id, name) unique index makes a double award a no-op at the
// storage layer.
type Badge struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_badge"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_user_badge"`
	Description string    `json:"description,omitempty"`
	EarnedAt    time.Time `json:"earned_at" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
