package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeInvalidPlan(t *testing.T) {
	db, _ := newTestDB(t)
	uc := NewSubscriptionUsecase(db, newTestLogger(), &fakeSubscriptionRepo{}, &fakeAuditService{})

	_, err := uc.Subscribe(context.Background(), uuid.New(), &dto.SubscribeRequest{Plan: "platinum"})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestSubscribeSetsActivePlanAndPeriod(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	var upserted *entity.Subscription
	repo := &fakeSubscriptionRepo{
		upsertFn: func(subscription *entity.Subscription) error {
			upserted = subscription
			return nil
		},
	}
	audit := &fakeAuditService{}
	uc := NewSubscriptionUsecase(db, newTestLogger(), repo, audit)

	resp, err := uc.Subscribe(context.Background(), userID, &dto.SubscribeRequest{Plan: "professional"})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, userID, upserted.UserID)
	assert.Equal(t, entity.PlanProfessional, upserted.Plan)
	assert.Equal(t, entity.SubscriptionStatusActive, upserted.Status)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), upserted.CurrentPeriodEnd, time.Minute)

	assert.True(t, resp.ReportAccess)
	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditActionSubscribe, audit.calls[0].action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeBasicPlanHasNoReportAccess(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeSubscriptionRepo{
		upsertFn: func(subscription *entity.Subscription) error { return nil },
	}
	uc := NewSubscriptionUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	resp, err := uc.Subscribe(context.Background(), uuid.New(), &dto.SubscribeRequest{Plan: "basic"})

	require.NoError(t, err)
	assert.False(t, resp.ReportAccess)
}

func TestSubscribeUnknownUser(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeSubscriptionRepo{
		upsertFn: func(subscription *entity.Subscription) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "subscriptions_user_id_fkey"}
		},
	}
	uc := NewSubscriptionUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	_, err := uc.Subscribe(context.Background(), uuid.New(), &dto.SubscribeRequest{Plan: "basic"})
	assert.ErrorIs(t, err, ErrSubscriptionUserNotFound)
}

func TestGetActiveSubscriptionNone(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeSubscriptionRepo{
		findActiveByUserIDFn: func(userID uuid.UUID) (*entity.Subscription, error) {
			return nil, nil
		},
	}
	uc := NewSubscriptionUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	resp, err := uc.GetActiveSubscription(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetActiveSubscriptionStoreErrorSurfaced(t *testing.T) {
	db, _ := newTestDB(t)
	storeErr := errors.New("connection reset")
	repo := &fakeSubscriptionRepo{
		findActiveByUserIDFn: func(userID uuid.UUID) (*entity.Subscription, error) {
			return nil, storeErr
		},
	}
	uc := NewSubscriptionUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	// A store failure is an error, not "no subscription".
	_, err := uc.GetActiveSubscription(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storeErr)
}
