package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Specialty string `json:"specialty" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty,min=6,max=20"`
}

// UpdateDoctorRequest is a partial patch: nil fields are left
// unchanged, present-but-empty required fields fail validation.
type UpdateDoctorRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2"`
	Specialty *string `json:"specialty" validate:"omitempty,min=1"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
