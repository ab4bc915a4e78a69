package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	DNI   string `json:"dni" validate:"required"`
	Phone string `json:"phone" validate:"omitempty,min=6,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdatePatientRequest is a partial patch: nil fields are left
// unchanged, present-but-empty required fields fail validation.
type UpdatePatientRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2"`
	DNI   *string `json:"dni" validate:"omitempty,min=1"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DNI       string    `json:"dni"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
