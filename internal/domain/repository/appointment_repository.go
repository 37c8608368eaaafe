package repository

import (
	"context"
	"time"

	"clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	// FindByID returns (nil, nil) when the appointment does not exist.
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// ListIDNames returns only the id and name of every appointment,
	// unordered.
	ListIDNames(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	// FindByDoctorID returns the doctor's appointments ordered by date then
	// time ascending, rows without a schedule last.
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) ([]entity.Appointment, error)
	// FindByDate returns appointments on the given calendar date ordered by
	// time ascending.
	FindByDate(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	// Update overwrites the scheduling and clinical columns, including
	// writes of empty and null values, and forces is_active to false.
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
	// RefreshStatuses reclassifies every appointment with isActive and
	// persists the result, then returns all appointments ordered by date
	// then time ascending with unscheduled rows last. Both update phases
	// and the read happen in one transaction.
	RefreshStatuses(ctx context.Context, db *gorm.DB, isActive func(*entity.Appointment) bool) ([]entity.Appointment, error)
}
