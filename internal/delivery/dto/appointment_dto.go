package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Name            string `json:"name" validate:"required"`
	PhoneNumber     string `json:"phone_number"`
	Address         string `json:"address"`
	Age             *int   `json:"age" validate:"omitempty,gte=0"`
	Gender          string `json:"gender"`
	Disease         string `json:"disease"`
	DoctorID        string `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time"` // Format: HH:MM or HH:MM:SS

	InitialComplaints string `json:"initial_complaints"`
	MedicalHistory    string `json:"medical_history"`
	FamilyHistory     string `json:"family_history"`
	SocialHistory     string `json:"social_history"`
	OnMedications     string `json:"on_medications"`
	Vitals            string `json:"vitals"`
	Allergies         string `json:"allergies"`
	Surgeries         string `json:"surgeries"`
	Location          string `json:"location"`
	Professional      string `json:"professional"`
}

// UpdateAppointmentRequest overwrites the scheduling and clinical fields;
// omitted fields are cleared, matching the reschedule contract.
type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time"` // Format: HH:MM or HH:MM:SS

	InitialComplaints string `json:"initial_complaints"`
	MedicalHistory    string `json:"medical_history"`
	FamilyHistory     string `json:"family_history"`
	SocialHistory     string `json:"social_history"`
	OnMedications     string `json:"on_medications"`
	Vitals            string `json:"vitals"`
	Allergies         string `json:"allergies"`
	Surgeries         string `json:"surgeries"`
	Location          string `json:"location"`
	Professional      string `json:"professional"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Address         string    `json:"address,omitempty"`
	Age             *int      `json:"age,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Disease         string    `json:"disease,omitempty"`
	DoctorID        string    `json:"doctor_id,omitempty"`
	AppointmentDate string    `json:"appointment_date,omitempty"`
	AppointmentTime string    `json:"appointment_time,omitempty"`
	IsActive        bool      `json:"is_active"`

	InitialComplaints string `json:"initial_complaints,omitempty"`
	MedicalHistory    string `json:"medical_history,omitempty"`
	FamilyHistory     string `json:"family_history,omitempty"`
	SocialHistory     string `json:"social_history,omitempty"`
	OnMedications     string `json:"on_medications,omitempty"`
	Vitals            string `json:"vitals,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	Surgeries         string `json:"surgeries,omitempty"`
	Location          string `json:"location,omitempty"`
	Professional      string `json:"professional,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AppointmentStatus is one row of the status-refresh listing.
type AppointmentStatus struct {
	Name                 string `json:"name"`
	AppointmentDate      string `json:"appointment_date,omitempty"`
	AppointmentTime      string `json:"appointment_time,omitempty"`
	AppointmentTimestamp string `json:"appointment_timestamp,omitempty"`
	Status               string `json:"status"`
}

// StatusRefreshResponse is the full body of the update-status endpoint.
type StatusRefreshResponse struct {
	Message     string              `json:"message"`
	Patients    []AppointmentStatus `json:"patients"`
	CurrentTime string              `json:"current_time"`
}
