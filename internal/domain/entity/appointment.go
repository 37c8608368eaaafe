package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a patient visit record. Scheduling and clinical
// columns arrived in later schema revisions, so everything past the base
// demographics is nullable and ensured by the schema manager rather than
// the base migration.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	PhoneNumber string    `gorm:"type:text" json:"phone_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	Age         *int      `gorm:"type:integer" json:"age,omitempty"`
	Gender      string    `gorm:"type:text" json:"gender,omitempty"`
	Disease     string    `gorm:"type:text" json:"disease,omitempty"`

	AppointmentDate *time.Time `gorm:"column:appointment_date;type:date" json:"appointment_date,omitempty"`
	// Clock time in HH:MM:SS form, kept separate from the date the way the
	// schema stores it. Combined into one instant only by the evaluator.
	AppointmentTime *string `gorm:"column:appointment_time;type:time" json:"appointment_time,omitempty"`

	// References accounts.doctor_id with ON DELETE SET NULL.
	DoctorID *string `gorm:"column:doctor_id;type:text" json:"doctor_id,omitempty"`

	// Derived by the activity evaluator; never user-settable. Forced to
	// false on insert and on reschedule.
	IsActive bool `gorm:"not null;default:false" json:"is_active"`

	InitialComplaints string `gorm:"type:text" json:"initial_complaints,omitempty"`
	MedicalHistory    string `gorm:"type:text" json:"medical_history,omitempty"`
	FamilyHistory     string `gorm:"type:text" json:"family_history,omitempty"`
	SocialHistory     string `gorm:"type:text" json:"social_history,omitempty"`
	OnMedications     string `gorm:"type:text" json:"on_medications,omitempty"`
	Vitals            string `gorm:"type:text" json:"vitals,omitempty"`
	Allergies         string `gorm:"type:text" json:"allergies,omitempty"`
	Surgeries         string `gorm:"type:text" json:"surgeries,omitempty"`
	Location          string `gorm:"type:text" json:"location,omitempty"`
	Professional      string `gorm:"type:text" json:"professional,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
