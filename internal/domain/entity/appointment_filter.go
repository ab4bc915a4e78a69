package entity

// UpcomingFilter is a domain-level filter for the forward-looking
// appointment query used by the dashboard.
// Used by repository layer to avoid coupling with delivery DTOs.
type UpcomingFilter struct {
	FromDate string              // Format: YYYY-MM-DD, inclusive lower bound
	Statuses []AppointmentStatus // status IN (...)
	Limit    int                 // max rows returned
}
