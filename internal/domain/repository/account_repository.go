package repository

import (
	"context"

	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AccountRepository interface {
	// Create inserts the account in one statement; uniqueness of email and
	// doctor_id is enforced by the database constraints, not a pre-check.
	Create(ctx context.Context, db *gorm.DB, account *entity.Account) error
	// FindByDoctorID returns (nil, nil) when no account has that doctor_id.
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (*entity.Account, error)
	// UpdatePassword stores the new password and clears the first-login flag.
	UpdatePassword(ctx context.Context, db *gorm.DB, doctorID, newPassword string) error
	// ListNames returns every account name in ascending lexical order.
	ListNames(ctx context.Context, db *gorm.DB) ([]string, error)
}
