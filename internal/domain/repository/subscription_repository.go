package repository

import (
	"clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	// Upsert inserts the subscription or, when a row for the same
	// user_id already exists, replaces it in place.
	Upsert(db *gorm.DB, subscription *entity.Subscription) error
	FindActiveByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Subscription, error)
}
