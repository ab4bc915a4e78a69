package repository

import (
	"testing"

	"clinic-management/internal/domain/entity"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFindUpcomingQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE date >= \$1 AND status IN \(\$2,\$3\) ORDER BY date ASC,time ASC LIMIT \$4`).
		WithArgs("2026-08-28", entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "patient_id", "date", "time", "status"}))

	appointments, err := repo.FindUpcoming(db, &entity.UpcomingFilter{
		FromDate: "2026-08-28",
		Statuses: []entity.AppointmentStatus{
			entity.AppointmentStatusPending,
			entity.AppointmentStatusConfirmed,
		},
		Limit: 4,
	})

	require.NoError(t, err)
	assert.Empty(t, appointments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentFindAllOrdersByDateThenTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT \* FROM "appointments" ORDER BY date DESC,time ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "patient_id", "date", "time", "status"}))

	_, err := repo.FindAll(db)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE status = \$1`).
		WithArgs(entity.AppointmentStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(db, entity.AppointmentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
