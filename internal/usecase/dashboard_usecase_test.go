package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	db, _ := newTestDB(t)
	userID := uuid.New()

	doctorRepo := &fakeDoctorRepo{countFn: func() (int64, error) { return 5, nil }}
	patientRepo := &fakePatientRepo{countFn: func() (int64, error) { return 12, nil }}
	appointmentRepo := &fakeAppointmentRepo{
		countFn: func() (int64, error) { return 30, nil },
		countByStatusFn: func(status entity.AppointmentStatus) (int64, error) {
			assert.Equal(t, entity.AppointmentStatusPending, status)
			return 7, nil
		},
		findUpcomingFn: func(filter *entity.UpcomingFilter) ([]entity.Appointment, error) {
			assert.Equal(t, DefaultUpcomingLimit, filter.Limit)
			return []entity.Appointment{
				{ID: uuid.New(), Date: time.Now().AddDate(0, 0, 1), Time: "09:00", Status: entity.AppointmentStatusPending},
			}, nil
		},
	}
	subscriptionRepo := &fakeSubscriptionRepo{
		findActiveByUserIDFn: func(id uuid.UUID) (*entity.Subscription, error) {
			return &entity.Subscription{
				UserID: id,
				Plan:   entity.PlanEnterprise,
				Status: entity.SubscriptionStatusActive,
			}, nil
		},
	}

	uc := NewDashboardUsecase(db, newTestLogger(), doctorRepo, patientRepo, appointmentRepo, subscriptionRepo)

	summary, err := uc.GetSummary(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.TotalDoctors)
	assert.Equal(t, int64(12), summary.TotalPatients)
	assert.Equal(t, int64(30), summary.TotalAppointments)
	assert.Equal(t, int64(7), summary.PendingAppointments)
	assert.Len(t, summary.Upcoming, 1)
	require.NotNil(t, summary.Subscription)
	assert.True(t, summary.ReportAccess)
}

func TestGetSummaryWithoutSubscription(t *testing.T) {
	db, _ := newTestDB(t)

	doctorRepo := &fakeDoctorRepo{countFn: func() (int64, error) { return 0, nil }}
	patientRepo := &fakePatientRepo{countFn: func() (int64, error) { return 0, nil }}
	appointmentRepo := &fakeAppointmentRepo{
		countFn:         func() (int64, error) { return 0, nil },
		countByStatusFn: func(status entity.AppointmentStatus) (int64, error) { return 0, nil },
		findUpcomingFn: func(filter *entity.UpcomingFilter) ([]entity.Appointment, error) {
			return nil, nil
		},
	}
	subscriptionRepo := &fakeSubscriptionRepo{
		findActiveByUserIDFn: func(id uuid.UUID) (*entity.Subscription, error) {
			return nil, nil
		},
	}

	uc := NewDashboardUsecase(db, newTestLogger(), doctorRepo, patientRepo, appointmentRepo, subscriptionRepo)

	summary, err := uc.GetSummary(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, summary.Subscription)
	assert.False(t, summary.ReportAccess)
}

func TestGetSummaryBasicPlanHasNoReportAccess(t *testing.T) {
	db, _ := newTestDB(t)

	doctorRepo := &fakeDoctorRepo{countFn: func() (int64, error) { return 1, nil }}
	patientRepo := &fakePatientRepo{countFn: func() (int64, error) { return 1, nil }}
	appointmentRepo := &fakeAppointmentRepo{
		countFn:         func() (int64, error) { return 1, nil },
		countByStatusFn: func(status entity.AppointmentStatus) (int64, error) { return 1, nil },
		findUpcomingFn: func(filter *entity.UpcomingFilter) ([]entity.Appointment, error) {
			return nil, nil
		},
	}
	subscriptionRepo := &fakeSubscriptionRepo{
		findActiveByUserIDFn: func(id uuid.UUID) (*entity.Subscription, error) {
			return &entity.Subscription{
				UserID: id,
				Plan:   entity.PlanBasic,
				Status: entity.SubscriptionStatusActive,
			}, nil
		},
	}

	uc := NewDashboardUsecase(db, newTestLogger(), doctorRepo, patientRepo, appointmentRepo, subscriptionRepo)

	summary, err := uc.GetSummary(context.Background(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, summary.Subscription)
	assert.False(t, summary.ReportAccess)
}
