package dto

// Response DTOs

type DashboardSummaryResponse struct {
	TotalDoctors        int64                 `json:"total_doctors"`
	TotalPatients       int64                 `json:"total_patients"`
	TotalAppointments   int64                 `json:"total_appointments"`
	PendingAppointments int64                 `json:"pending_appointments"`
	Upcoming            []AppointmentResponse `json:"upcoming"`
	Subscription        *SubscriptionResponse `json:"subscription,omitempty"`
	ReportAccess        bool                  `json:"report_access"`
}
