package repository

import (
	"testing"
	"time"

	"clinic-management/internal/domain/entity"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionUpsertOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "subscriptions" .* ON CONFLICT \("user_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Upsert(db, &entity.Subscription{
		UserID:           uuid.New(),
		Plan:             entity.PlanProfessional,
		Status:           entity.SubscriptionStatusActive,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionFindActiveByUserIDFiltersStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository()

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE user_id = \$1 AND status = \$2`).
		WithArgs(userID, entity.SubscriptionStatusActive, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "plan", "status", "current_period_end"}).
			AddRow(userID, "enterprise", "active", time.Now().AddDate(0, 1, 0)))

	subscription, err := repo.FindActiveByUserID(db, userID)
	require.NoError(t, err)
	require.NotNil(t, subscription)
	assert.True(t, subscription.HasReportAccess())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionFindActiveByUserIDNone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE user_id = \$1 AND status = \$2`).
		WithArgs(sqlmock.AnyArg(), entity.SubscriptionStatusActive, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "plan", "status"}))

	subscription, err := repo.FindActiveByUserID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, subscription)
	assert.NoError(t, mock.ExpectationsWereMet())
}
