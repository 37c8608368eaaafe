package repository

import (
	"context"
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	return db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (*entity.Account, error) {
	var account entity.Account
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, db *gorm.DB, doctorID, newPassword string) error {
	return db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("doctor_id = ?", doctorID).
		Updates(map[string]interface{}{
			"password":       newPassword,
			"is_first_login": false,
		}).Error
}

func (r *accountRepository) ListNames(ctx context.Context, db *gorm.DB) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).
		Model(&entity.Account{}).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}
