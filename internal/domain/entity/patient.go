package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record managed by clinic staff.
// DNI is a human-facing identifier and is intentionally not unique.
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	DNI       string    `gorm:"column:dni;type:varchar(20);not null;index" json:"dni"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
