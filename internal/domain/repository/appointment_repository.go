package repository

import (
	"clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error)
	FindUpcoming(db *gorm.DB, filter *entity.UpcomingFilter) ([]entity.Appointment, error)
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
