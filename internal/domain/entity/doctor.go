package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a doctor record managed by clinic staff
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
