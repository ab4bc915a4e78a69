package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// DateLayout is the wire format for appointment dates
const DateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Doctor and patient summaries are included when the relations were preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:        appointment.ID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      appointment.Date.Format(DateLayout),
		Time:      appointment.Time,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Doctor.Name != "" {
		resp.Doctor = &dto.AppointmentDoctorSummary{
			Name:      appointment.Doctor.Name,
			Specialty: appointment.Doctor.Specialty,
		}
	}
	if appointment.Patient.Name != "" {
		resp.Patient = &dto.AppointmentPatientSummary{
			Name: appointment.Patient.Name,
		}
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
