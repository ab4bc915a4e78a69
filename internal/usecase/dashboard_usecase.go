package usecase

import (
	"context"
	"time"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummaryResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	subscriptionRepo repository.SubscriptionRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// GetSummary assembles the dashboard widgets: entity counts, the next
// few upcoming appointments and the caller's plan gate.
func (u *dashboardUsecase) GetSummary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	db := u.db.WithContext(ctx)

	doctors, err := u.doctorRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	pending, err := u.appointmentRepo.CountByStatus(db, entity.AppointmentStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending appointments: %+v", err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcoming(db, &entity.UpcomingFilter{
		FromDate: time.Now().Format(converter.DateLayout),
		Statuses: []entity.AppointmentStatus{
			entity.AppointmentStatusPending,
			entity.AppointmentStatusConfirmed,
		},
		Limit: DefaultUpcomingLimit,
	})
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	subscription, err := u.subscriptionRepo.FindActiveByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find subscription: %+v", err)
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		TotalDoctors:        doctors,
		TotalPatients:       patients,
		TotalAppointments:   appointments,
		PendingAppointments: pending,
		Upcoming:            converter.AppointmentsToResponses(upcoming),
		Subscription:        converter.SubscriptionToResponse(subscription),
		ReportAccess:        subscription.HasReportAccess(),
	}, nil
}
