package repository

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ordering shared by the by-doctor listing and the status refresh:
// unscheduled appointments sort after everything with a date and time.
const scheduleOrder = "appointment_date ASC NULLS LAST, appointment_time ASC NULLS LAST"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListIDNames(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Select("id", "name").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order(scheduleOrder).
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindByDate(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Order("appointment_time ASC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	// Select forces writes of zero and null values so a reschedule can
	// clear columns, and keeps is_active pinned to whatever the caller set.
	return db.WithContext(ctx).
		Model(appointment).
		Select(
			"appointment_date", "appointment_time",
			"initial_complaints", "medical_history", "family_history",
			"social_history", "on_medications", "vitals", "allergies",
			"surgeries", "location", "professional", "is_active",
		).
		Updates(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) RefreshStatuses(ctx context.Context, db *gorm.DB, isActive func(*entity.Appointment) bool) ([]entity.Appointment, error) {
	var result []entity.Appointment

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var all []entity.Appointment
		if err := tx.Find(&all).Error; err != nil {
			return err
		}

		var activeIDs, inactiveIDs []uuid.UUID
		for i := range all {
			if isActive(&all[i]) {
				activeIDs = append(activeIDs, all[i].ID)
			} else {
				inactiveIDs = append(inactiveIDs, all[i].ID)
			}
		}

		if len(activeIDs) > 0 {
			if err := tx.Model(&entity.Appointment{}).
				Where("id IN ?", activeIDs).
				Update("is_active", true).Error; err != nil {
				return err
			}
		}
		if len(inactiveIDs) > 0 {
			if err := tx.Model(&entity.Appointment{}).
				Where("id IN ?", inactiveIDs).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		return tx.Order(scheduleOrder).Find(&result).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
