package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// IsValid reports whether s is one of the enumerated statuses.
// No transition rules apply: staff may set any status to any other.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment represents a scheduled visit of a patient to a doctor
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time      string            `gorm:"type:time;not null" json:"time"`
	Status    AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still pending
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment has been confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the patient was already seen
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
