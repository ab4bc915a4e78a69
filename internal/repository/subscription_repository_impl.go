package repository

import (
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type subscriptionRepository struct{}

func NewSubscriptionRepository() domainRepo.SubscriptionRepository {
	return &subscriptionRepository{}
}

// Upsert keeps at most one subscription row per user: a conflict on
// user_id replaces the plan, status and period end in place.
func (r *subscriptionRepository) Upsert(db *gorm.DB, subscription *entity.Subscription) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan", "status", "current_period_end", "updated_at"}),
	}).Create(subscription).Error
}

func (r *subscriptionRepository) FindActiveByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Subscription, error) {
	var subscription entity.Subscription
	err := db.Where("user_id = ? AND status = ?", userID, entity.SubscriptionStatusActive).
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}
