package repository

import (
	"github.com/dharunks/insightiq/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	FindByUser(userID uint) ([]model.Badge, error)
	// Create is a no-op when the (user, name) pair already exists, keeping
	// badge awards append-only and idempotent at the storage layer.
	Create(badge *model.Badge) error
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) FindByUser(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.db.Where("user_id = ?", userID).Order("earned_at ASC").Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) Create(badge *model.Badge) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(badge).Error
}
