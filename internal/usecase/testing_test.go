package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-management/internal/domain/entity"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a GORM connection backed by sqlmock. Repositories
// are faked in these tests, so only transaction begin/commit/rollback
// reach the mock.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Fake repositories. Unset functions make the call fail loudly via a
// nil dereference rather than silently succeed.

type fakeDoctorRepo struct {
	createFn   func(doctor *entity.Doctor) error
	findByIDFn func(id uuid.UUID) (*entity.Doctor, error)
	findAllFn  func() ([]entity.Doctor, error)
	countFn    func() (int64, error)
	updateFn   func(doctor *entity.Doctor) error
	deleteFn   func(id uuid.UUID) error
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return f.createFn(doctor)
}

func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return f.findByIDFn(id)
}

func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	return f.findAllFn()
}

func (f *fakeDoctorRepo) Count(db *gorm.DB) (int64, error) {
	return f.countFn()
}

func (f *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return f.updateFn(doctor)
}

func (f *fakeDoctorRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	return f.deleteFn(id)
}

type fakePatientRepo struct {
	createFn   func(patient *entity.Patient) error
	findByIDFn func(id uuid.UUID) (*entity.Patient, error)
	findAllFn  func() ([]entity.Patient, error)
	countFn    func() (int64, error)
	updateFn   func(patient *entity.Patient) error
	deleteFn   func(id uuid.UUID) error
}

func (f *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	return f.createFn(patient)
}

func (f *fakePatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return f.findByIDFn(id)
}

func (f *fakePatientRepo) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	return f.findAllFn()
}

func (f *fakePatientRepo) Count(db *gorm.DB) (int64, error) {
	return f.countFn()
}

func (f *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	return f.updateFn(patient)
}

func (f *fakePatientRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	return f.deleteFn(id)
}

type fakeAppointmentRepo struct {
	createFn        func(appointment *entity.Appointment) error
	findByIDFn      func(id uuid.UUID) (*entity.Appointment, error)
	findAllFn       func() ([]entity.Appointment, error)
	findByDateFn    func(date string) ([]entity.Appointment, error)
	findUpcomingFn  func(filter *entity.UpcomingFilter) ([]entity.Appointment, error)
	countFn         func() (int64, error)
	countByStatusFn func(status entity.AppointmentStatus) (int64, error)
	updateFn        func(appointment *entity.Appointment) error
	deleteFn        func(id uuid.UUID) error
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return f.createFn(appointment)
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return f.findByIDFn(id)
}

func (f *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	return f.findAllFn()
}

func (f *fakeAppointmentRepo) FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error) {
	return f.findByDateFn(date)
}

func (f *fakeAppointmentRepo) FindUpcoming(db *gorm.DB, filter *entity.UpcomingFilter) ([]entity.Appointment, error) {
	return f.findUpcomingFn(filter)
}

func (f *fakeAppointmentRepo) Count(db *gorm.DB) (int64, error) {
	return f.countFn()
}

func (f *fakeAppointmentRepo) CountByStatus(db *gorm.DB, status entity.AppointmentStatus) (int64, error) {
	return f.countByStatusFn(status)
}

func (f *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return f.updateFn(appointment)
}

func (f *fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	return f.deleteFn(id)
}

type fakeSubscriptionRepo struct {
	upsertFn             func(subscription *entity.Subscription) error
	findActiveByUserIDFn func(userID uuid.UUID) (*entity.Subscription, error)
}

func (f *fakeSubscriptionRepo) Upsert(db *gorm.DB, subscription *entity.Subscription) error {
	return f.upsertFn(subscription)
}

func (f *fakeSubscriptionRepo) FindActiveByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Subscription, error) {
	return f.findActiveByUserIDFn(userID)
}

// fakeAuditService records the actions it was asked to log.

type auditCall struct {
	action   string
	entity   string
	entityID string
}

type fakeAuditService struct {
	calls []auditCall
}

func (f *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	f.calls = append(f.calls, auditCall{action: action, entity: entityName, entityID: entityID})
	return nil
}

func (f *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	f.calls = append(f.calls, auditCall{action: action, entity: entityName, entityID: entityID})
	return nil
}

func (f *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	f.calls = append(f.calls, auditCall{action: action, entity: entityName, entityID: entityID})
	return nil
}
