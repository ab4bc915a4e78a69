package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidPlan              = errors.New("invalid subscription plan")
	ErrSubscriptionUserNotFound = errors.New("user not found")
)

type SubscriptionUsecase interface {
	// GetActiveSubscription returns nil (without error) only when the
	// user genuinely has no active subscription. Store failures are
	// surfaced, never downgraded to absence.
	GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*dto.SubscriptionResponse, error)
	Subscribe(ctx context.Context, userID uuid.UUID, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
}

type subscriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	subscriptionRepo repository.SubscriptionRepository
	auditService     service.AuditService
}

func NewSubscriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	subscriptionRepo repository.SubscriptionRepository,
	auditService service.AuditService,
) SubscriptionUsecase {
	return &subscriptionUsecase{
		db:               db,
		log:              log,
		subscriptionRepo: subscriptionRepo,
		auditService:     auditService,
	}
}

func (u *subscriptionUsecase) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*dto.SubscriptionResponse, error) {
	subscription, err := u.subscriptionRepo.FindActiveByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find subscription: %+v", err)
		return nil, err
	}
	if subscription == nil {
		return nil, nil
	}

	return converter.SubscriptionToResponse(subscription), nil
}

// Subscribe upserts the caller's subscription keyed on user_id: a
// second subscribe replaces the row instead of adding one. The period
// end is one calendar month out.
func (u *subscriptionUsecase) Subscribe(ctx context.Context, userID uuid.UUID, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	plan := entity.SubscriptionPlan(req.Plan)
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	subscription := &entity.Subscription{
		UserID:           userID,
		Plan:             plan,
		Status:           entity.SubscriptionStatusActive,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	}

	if err := u.subscriptionRepo.Upsert(tx, subscription); err != nil {
		if isForeignKeyError(err, "user") {
			return nil, ErrSubscriptionUserNotFound
		}
		u.log.Warnf("Failed to upsert subscription: %+v", err)
		return nil, err
	}

	// Audit log - subscribe
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionSubscribe, "subscription", userID.String(), converter.SubscriptionToResponse(subscription)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SubscriptionToResponse(subscription), nil
}
