package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/notification"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrDoctorIDAlreadyExists   = errors.New("doctor ID already exists")
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrPasswordConfirmMismatch = errors.New("new password and confirmation do not match")
)

// NameCache fronts the doctor-name listing; the Redis implementation
// lives in internal/infrastructure/cache. Cache failures are logged and
// bypassed, never surfaced.
type NameCache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, names []string) error
	Invalidate(ctx context.Context) error
}

type AccountUsecase interface {
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AccountResponse, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	ListDoctorNames(ctx context.Context) ([]string, error)
}

type accountUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	mailer      notification.Mailer
	names       NameCache
}

func NewAccountUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	mailer notification.Mailer,
	names NameCache,
) AccountUsecase {
	return &accountUsecase{
		db:          db,
		log:         log,
		accountRepo: accountRepo,
		mailer:      mailer,
		names:       names,
	}
}

func (u *accountUsecase) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	account := &entity.Account{
		Name:         req.Name,
		Email:        req.Email,
		Hospital:     req.Hospital,
		Degree:       req.Degree,
		Password:     req.Password,
		DoctorID:     req.DoctorID,
		IsFirstLogin: true,
	}

	// A single insert; the unique constraints decide conflicts, so there
	// is no check-then-insert race.
	if err := u.accountRepo.Create(ctx, u.db, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "doctor_id") {
			return nil, ErrDoctorIDAlreadyExists
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	// The row is committed at this point; a failed delivery surfaces to
	// the caller while the account stays.
	if err := u.mailer.SendCredentials(ctx, account.Email, account.DoctorID, account.Password); err != nil {
		u.log.Errorf("Failed to send credentials to %s: %+v", account.Email, err)
		return nil, fmt.Errorf("failed to deliver credentials: %w", err)
	}

	if err := u.names.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate doctor-name cache: %+v", err)
	}

	return accountResponse(account), nil
}

func (u *accountUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByDoctorID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrDoctorNotFound
	}

	// Exact byte equality against the stored plaintext credential.
	if account.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	return accountResponse(account), nil
}

func (u *accountUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	account, err := u.accountRepo.FindByDoctorID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", req.DoctorID, err)
		return err
	}
	if account == nil {
		return ErrDoctorNotFound
	}

	if account.Password != req.Password {
		return ErrInvalidCredentials
	}

	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordConfirmMismatch
	}

	if err := u.accountRepo.UpdatePassword(ctx, u.db, req.DoctorID, req.NewPassword); err != nil {
		u.log.Warnf("Failed to update password for %s: %+v", req.DoctorID, err)
		return err
	}

	return nil
}

func (u *accountUsecase) ListDoctorNames(ctx context.Context) ([]string, error) {
	if names, err := u.names.Get(ctx); err != nil {
		u.log.Warnf("Doctor-name cache read failed: %+v", err)
	} else if names != nil {
		return names, nil
	}

	names, err := u.accountRepo.ListNames(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list doctor names: %+v", err)
		return nil, err
	}

	if err := u.names.Set(ctx, names); err != nil {
		u.log.Warnf("Doctor-name cache write failed: %+v", err)
	}

	return names, nil
}

func accountResponse(account *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		Hospital:     account.Hospital,
		Degree:       account.Degree,
		DoctorID:     account.DoctorID,
		IsFirstLogin: account.IsFirstLogin,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// violation on a constraint containing the given name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
