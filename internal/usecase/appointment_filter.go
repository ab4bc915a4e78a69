package usecase

import (
	"strings"

	"clinic-management/internal/delivery/dto"
)

// StatusFilterAll disables status filtering
const StatusFilterAll = "all"

// FilterAppointments narrows an already-fetched appointment list.
// A row is kept when the status filter passes (status empty or "all",
// or an exact match) and the free-text query matches the doctor name,
// patient name or date string, case-insensitive. The input slice is
// never mutated and relative order is preserved.
func FilterAppointments(items []dto.AppointmentResponse, query string, status string) []dto.AppointmentResponse {
	term := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]dto.AppointmentResponse, 0, len(items))
	for _, item := range items {
		if status != "" && status != StatusFilterAll && item.Status != status {
			continue
		}
		if term != "" && !appointmentMatches(&item, term) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func appointmentMatches(item *dto.AppointmentResponse, term string) bool {
	if item.Doctor != nil && strings.Contains(strings.ToLower(item.Doctor.Name), term) {
		return true
	}
	if item.Patient != nil && strings.Contains(strings.ToLower(item.Patient.Name), term) {
		return true
	}
	return strings.Contains(item.Date, term)
}
