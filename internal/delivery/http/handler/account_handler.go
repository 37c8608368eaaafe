package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
	validator      *validator.CustomValidator
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase, validator *validator.CustomValidator) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		validator:      validator,
	}
}

// CreateAccount handles POST /api/admin/admin
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FirstError(err))
		return
	}

	account, err := h.accountUsecase.CreateAccount(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrDoctorIDAlreadyExists:
			response.Conflict(w, "Doctor ID already exists")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admin added and credentials emailed", "admin", account)
}

// Login handles POST /api/admin/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FirstError(err))
		return
	}

	account, err := h.accountUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor ID not found")
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid credentials")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", "doctor", account)
}

// ChangePassword handles POST /api/admin/change-password
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FirstError(err))
		return
	}

	if err := h.accountUsecase.ChangePassword(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor ID not found")
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Current password is incorrect")
		case usecase.ErrPasswordConfirmMismatch:
			response.BadRequest(w, "New password and confirmation do not match")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Message(w, http.StatusOK, "Password changed successfully")
}

// ListDoctorNames handles POST /api/admin/doctor-name
func (h *AccountHandler) ListDoctorNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.accountUsecase.ListDoctorNames(r.Context())
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	if names == nil {
		names = []string{}
	}
	response.Success(w, http.StatusOK, "Doctor names fetched successfully", "doctors", names)
}
