package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Hospital string `json:"hospital"`
	Degree   string `json:"degree"`
	Password string `json:"password" validate:"required"`
	DoctorID string `json:"doctor_id" validate:"required"`
}

type LoginRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	Password        string `json:"password" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Response DTOs

type AccountResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Hospital     string    `json:"hospital,omitempty"`
	Degree       string    `json:"degree,omitempty"`
	DoctorID     string    `json:"doctor_id"`
	IsFirstLogin bool      `json:"is_first_login"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
