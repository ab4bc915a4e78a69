package repository

import (
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll returns every appointment for the management list view,
// newest date first, same-day rows in time order.
func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").
		Order("date DESC").
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").
		Where("date = ?", date).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindUpcoming returns the forward-looking view used by the dashboard:
// date >= filter.FromDate, status IN filter.Statuses, soonest first.
func (r *appointmentRepository) FindUpcoming(db *gorm.DB, filter *entity.UpcomingFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Doctor").Preload("Patient").
		Where("date >= ?", filter.FromDate)
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	query = query.Order("date ASC").Order("time ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	err := query.Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Appointment{}).Error
}
