package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// SubscriptionToResponse converts a Subscription entity to SubscriptionResponse DTO
func SubscriptionToResponse(subscription *entity.Subscription) *dto.SubscriptionResponse {
	if subscription == nil {
		return nil
	}

	return &dto.SubscriptionResponse{
		UserID:           subscription.UserID,
		Plan:             string(subscription.Plan),
		Status:           string(subscription.Status),
		CurrentPeriodEnd: subscription.CurrentPeriodEnd,
		ReportAccess:     subscription.HasReportAccess(),
	}
}
