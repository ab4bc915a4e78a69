package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound        = errors.New("appointment not found")
	ErrAppointmentDoctorNotFound  = errors.New("referenced doctor does not exist")
	ErrAppointmentPatientNotFound = errors.New("referenced patient does not exist")
	ErrInvalidAppointmentStatus   = errors.New("invalid appointment status")
	ErrInvalidDateFormat          = errors.New("invalid date format, use YYYY-MM-DD")
)

// DefaultUpcomingLimit caps the dashboard's upcoming-appointments widget
const DefaultUpcomingLimit = 4

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetUpcomingAppointments(ctx context.Context, fromDate string, statuses []string, limit int) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(converter.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Status is forced to pending: the request carries no status field
	// and any injected value is discarded by the decoder.
	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      date,
		Time:      req.Time,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrAppointmentDoctorNotFound
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrAppointmentPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Re-read inside the transaction so the response carries the
	// doctor and patient summaries.
	stored, err := u.appointmentRepo.FindByID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}

	// Audit log - create appointment
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(stored)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(stored), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	if _, err := time.Parse(converter.DateLayout, date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to find appointments by date: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// GetUpcomingAppointments returns the forward-looking view: appointments
// on or after fromDate (today when empty), restricted to the given
// statuses (pending and confirmed when empty), soonest first, capped at
// limit (4 when zero).
func (u *appointmentUsecase) GetUpcomingAppointments(ctx context.Context, fromDate string, statuses []string, limit int) (*dto.AppointmentListResponse, error) {
	if fromDate == "" {
		fromDate = time.Now().Format(converter.DateLayout)
	} else if _, err := time.Parse(converter.DateLayout, fromDate); err != nil {
		return nil, ErrInvalidDateFormat
	}

	statusFilter := []entity.AppointmentStatus{
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
	}
	if len(statuses) > 0 {
		statusFilter = statusFilter[:0]
		for _, s := range statuses {
			status := entity.AppointmentStatus(s)
			if !status.IsValid() {
				return nil, ErrInvalidAppointmentStatus
			}
			statusFilter = append(statusFilter, status)
		}
	}

	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	appointments, err := u.appointmentRepo.FindUpcoming(u.db.WithContext(ctx), &entity.UpcomingFilter{
		FromDate: fromDate,
		Statuses: statusFilter,
		Limit:    limit,
	})
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Capture old value for audit
	oldValue := converter.AppointmentToResponse(appointment)

	// Apply patch - nil fields stay untouched
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
	}
	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
	}
	if req.Date != nil {
		date, err := time.Parse(converter.DateLayout, *req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Status != nil {
		// Any enumerated status may replace any other. There is no
		// transition guard: staff can move cancelled back to confirmed.
		status := entity.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidAppointmentStatus
		}
		appointment.Status = status
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrAppointmentDoctorNotFound
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrAppointmentPatientNotFound
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	// Re-read so the summaries reflect a possibly reassigned doctor
	// or patient.
	stored, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}

	// Audit log - update appointment
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentUpdate, "appointment", id.String(), oldValue, converter.AppointmentToResponse(stored)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(stored), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	// Audit log - delete appointment
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionAppointmentDelete, "appointment", id.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
