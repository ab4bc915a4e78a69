package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctor(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	doctorID := uuid.New()
	repo := &fakeDoctorRepo{
		createFn: func(doctor *entity.Doctor) error {
			doctor.ID = doctorID
			return nil
		},
	}
	audit := &fakeAuditService{}
	uc := NewDoctorUsecase(db, newTestLogger(), repo, audit)

	resp, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:      "Dr. Elena Ruiz",
		Specialty: "Cardiology",
		Phone:     "600123456",
	})

	require.NoError(t, err)
	assert.Equal(t, doctorID, resp.ID)
	assert.Equal(t, "Dr. Elena Ruiz", resp.Name)
	assert.Equal(t, "Cardiology", resp.Specialty)

	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditActionDoctorCreate, audit.calls[0].action)
	assert.Equal(t, doctorID.String(), audit.calls[0].entityID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDoctorNotFound(t *testing.T) {
	db, _ := newTestDB(t)
	repo := &fakeDoctorRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Doctor, error) {
			return nil, nil
		},
	}
	uc := NewDoctorUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	_, err := uc.GetDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateDoctorPartialPatch(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	doctorID := uuid.New()
	var saved *entity.Doctor
	repo := &fakeDoctorRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{
				ID:        doctorID,
				Name:      "Dr. Elena Ruiz",
				Specialty: "Cardiology",
				Phone:     "600123456",
			}, nil
		},
		updateFn: func(doctor *entity.Doctor) error {
			saved = doctor
			return nil
		},
	}
	uc := NewDoctorUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	newName := "Dr. Elena Ruiz-Santos"
	resp, err := uc.UpdateDoctor(context.Background(), doctorID, &dto.UpdateDoctorRequest{
		Name: &newName,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, newName, saved.Name)
	// Fields absent from the patch keep their stored values.
	assert.Equal(t, "Cardiology", saved.Specialty)
	assert.Equal(t, "600123456", saved.Phone)
	assert.Equal(t, newName, resp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDoctorNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeDoctorRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Doctor, error) {
			return nil, nil
		},
	}
	uc := NewDoctorUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	name := "Dr. Nobody"
	_, err := uc.UpdateDoctor(context.Background(), uuid.New(), &dto.UpdateDoctorRequest{Name: &name})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDeleteDoctorWithAppointments(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	doctorID := uuid.New()
	repo := &fakeDoctorRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{ID: doctorID, Name: "Dr. Elena Ruiz", Specialty: "Cardiology"}, nil
		},
		deleteFn: func(id uuid.UUID) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "appointments_doctor_id_fkey"}
		},
	}
	uc := NewDoctorUsecase(db, newTestLogger(), repo, &fakeAuditService{})

	err := uc.DeleteDoctor(context.Background(), doctorID)
	assert.ErrorIs(t, err, ErrDoctorInUse)
}

func TestDeleteDoctor(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	doctorID := uuid.New()
	audit := &fakeAuditService{}
	repo := &fakeDoctorRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{ID: doctorID, Name: "Dr. Elena Ruiz", Specialty: "Cardiology"}, nil
		},
		deleteFn: func(id uuid.UUID) error {
			return nil
		},
	}
	uc := NewDoctorUsecase(db, newTestLogger(), repo, audit)

	require.NoError(t, uc.DeleteDoctor(context.Background(), doctorID))
	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.AuditActionDoctorDelete, audit.calls[0].action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
