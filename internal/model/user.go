package model

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User carries the cached stats projection. Stats is recomputed from the full
// completed-interview set whenever the profile is fetched; it is never the
// source of truth.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Username  string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string         `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"size:100;not null" json:"-"`
	Stats     *UserStats     `json:"stats,omitempty" gorm:"type:jsonb;serializer:json"`
	Badges    []Badge        `json:"badges,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type UserStats struct {
	TotalInterviews     int     `json:"total_interviews"`
	TechnicalInterviews int     `json:"technical_interviews"`
	AverageConfidence   float64 `json:"average_confidence"`
	AverageClarity      float64 `json:"average_clarity"`
	ImprovementTrend    float64 `json:"improvement_trend"` // percent, 0 under 10 completed interviews
}

// BeforeSave hashes the password unless it is already a bcrypt hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if len(u.Password) > 0 && !strings.HasPrefix(u.Password, "$2a$") &&
		!strings.HasPrefix(u.Password, "$2b$") && !strings.HasPrefix(u.Password, "$2y$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
