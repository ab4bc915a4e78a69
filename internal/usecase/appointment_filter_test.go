package usecase

import (
	"testing"

	"clinic-management/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixtures() []dto.AppointmentResponse {
	return []dto.AppointmentResponse{
		{
			Date:    "2026-09-14",
			Status:  "pending",
			Doctor:  &dto.AppointmentDoctorSummary{Name: "Dr. Elena Ruiz", Specialty: "Cardiology"},
			Patient: &dto.AppointmentPatientSummary{Name: "Marta Velasco"},
		},
		{
			Date:    "2026-09-15",
			Status:  "confirmed",
			Doctor:  &dto.AppointmentDoctorSummary{Name: "Dr. Pablo Ortega", Specialty: "Dermatology"},
			Patient: &dto.AppointmentPatientSummary{Name: "Luis Carmona"},
		},
		{
			Date:    "2026-09-15",
			Status:  "cancelled",
			Doctor:  &dto.AppointmentDoctorSummary{Name: "Dr. Elena Ruiz", Specialty: "Cardiology"},
			Patient: &dto.AppointmentPatientSummary{Name: "Carmen Iglesias"},
		},
	}
}

func TestFilterAppointmentsByStatus(t *testing.T) {
	out := FilterAppointments(filterFixtures(), "", "confirmed")
	require.Len(t, out, 1)
	assert.Equal(t, "Luis Carmona", out[0].Patient.Name)
}

func TestFilterAppointmentsStatusAll(t *testing.T) {
	assert.Len(t, FilterAppointments(filterFixtures(), "", StatusFilterAll), 3)
	assert.Len(t, FilterAppointments(filterFixtures(), "", ""), 3)
}

func TestFilterAppointmentsQueryMatchesDoctorName(t *testing.T) {
	// Case-insensitive substring match on doctor name.
	out := FilterAppointments(filterFixtures(), "eLeNa", "")
	require.Len(t, out, 2)
	assert.Equal(t, "2026-09-14", out[0].Date)
	assert.Equal(t, "2026-09-15", out[1].Date)
}

func TestFilterAppointmentsQueryMatchesPatientName(t *testing.T) {
	out := FilterAppointments(filterFixtures(), "carmona", "")
	require.Len(t, out, 1)
	assert.Equal(t, "confirmed", out[0].Status)
}

func TestFilterAppointmentsQueryMatchesDate(t *testing.T) {
	out := FilterAppointments(filterFixtures(), "09-15", "")
	assert.Len(t, out, 2)
}

func TestFilterAppointmentsCombined(t *testing.T) {
	out := FilterAppointments(filterFixtures(), "elena", "cancelled")
	require.Len(t, out, 1)
	assert.Equal(t, "Carmen Iglesias", out[0].Patient.Name)
}

func TestFilterAppointmentsNoMatch(t *testing.T) {
	out := FilterAppointments(filterFixtures(), "nonexistent", "")
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestFilterAppointmentsDoesNotMutateInput(t *testing.T) {
	in := filterFixtures()
	_ = FilterAppointments(in, "elena", "pending")
	assert.Equal(t, filterFixtures(), in)
}

func TestFilterAppointmentsPreservesOrder(t *testing.T) {
	out := FilterAppointments(filterFixtures(), "", "all")
	require.Len(t, out, 3)
	assert.Equal(t, "pending", out[0].Status)
	assert.Equal(t, "confirmed", out[1].Status)
	assert.Equal(t, "cancelled", out[2].Status)
}
