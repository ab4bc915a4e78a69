package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest deliberately carries no status field:
// new appointments always start as pending.
type CreateAppointmentRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
}

// UpdateAppointmentRequest is a partial patch: nil fields are left
// unchanged. Any enumerated status may be set directly, there is no
// transition guard.
type UpdateAppointmentRequest struct {
	DoctorID  *uuid.UUID `json:"doctor_id" validate:"omitempty"`
	PatientID *uuid.UUID `json:"patient_id" validate:"omitempty"`
	Date      *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      *string    `json:"time" validate:"omitempty,datetime=15:04"`
	Status    *string    `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

// Response DTOs

type AppointmentDoctorSummary struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type AppointmentPatientSummary struct {
	Name string `json:"name"`
}

type AppointmentResponse struct {
	ID        uuid.UUID                  `json:"id"`
	DoctorID  uuid.UUID                  `json:"doctor_id"`
	PatientID uuid.UUID                  `json:"patient_id"`
	Date      string                     `json:"date"`
	Time      string                     `json:"time"`
	Status    string                     `json:"status"`
	Doctor    *AppointmentDoctorSummary  `json:"doctor,omitempty"`
	Patient   *AppointmentPatientSummary `json:"patient,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
