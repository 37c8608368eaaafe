package database

import "clinic-backend/internal/domain/entity"

// ClinicTableSpecs lists the optional columns the clinic schema picked up
// over time. Base columns come from the versioned migrations; everything
// here is ensured idempotently at startup.
func ClinicTableSpecs() []TableSpec {
	return []TableSpec{
		{
			Table: entity.Account{}.TableName(),
			Model: &entity.Account{},
			OptionalColumns: []ColumnSpec{
				{Name: "is_first_login", Type: "boolean", Default: "TRUE"},
			},
		},
		{
			Table: entity.Appointment{}.TableName(),
			Model: &entity.Appointment{},
			OptionalColumns: []ColumnSpec{
				{Name: "appointment_date", Type: "date"},
				{Name: "appointment_time", Type: "time"},
				{Name: "doctor_id", Type: "text REFERENCES accounts(doctor_id) ON DELETE SET NULL"},
				{Name: "is_active", Type: "boolean", Default: "FALSE"},
				{Name: "initial_complaints", Type: "text"},
				{Name: "medical_history", Type: "text"},
				{Name: "family_history", Type: "text"},
				{Name: "social_history", Type: "text"},
				{Name: "on_medications", Type: "text"},
				{Name: "vitals", Type: "text"},
				{Name: "allergies", Type: "text"},
				{Name: "surgeries", Type: "text"},
				{Name: "location", Type: "text"},
				{Name: "professional", Type: "text"},
			},
		},
	}
}
