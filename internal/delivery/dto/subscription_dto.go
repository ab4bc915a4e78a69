package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SubscribeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic professional enterprise"`
}

// Response DTOs

type SubscriptionResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Plan             string    `json:"plan"`
	Status           string    `json:"status"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	ReportAccess     bool      `json:"report_access"`
}
