package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan represents a plan tier
type SubscriptionPlan string

const (
	PlanBasic        SubscriptionPlan = "basic"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

// IsValid reports whether p is one of the purchasable plan tiers.
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanBasic, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "active"
)

// Subscription represents a user's plan subscription.
// UserID is the primary key, so a user holds at most one row;
// subscribing again overwrites the existing one via upsert.
type Subscription struct {
	UserID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"user_id"`
	Plan             SubscriptionPlan   `gorm:"type:varchar(20);not null" json:"plan"`
	Status           SubscriptionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CurrentPeriodEnd time.Time          `gorm:"not null" json:"current_period_end"`
	CreatedAt        time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// IsActive checks if the subscription is currently active
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// HasReportAccess reports whether this subscription unlocks the
// report sections of the dashboard.
func (s *Subscription) HasReportAccess() bool {
	if s == nil || !s.IsActive() {
		return false
	}
	return s.Plan == PlanProfessional || s.Plan == PlanEnterprise
}
