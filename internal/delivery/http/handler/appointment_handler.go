package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment handles POST /api/patients/create
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FirstError(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor ID not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", "patient", appointment)
}

// GetAllAppointments handles GET /api/patients/all
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	if summaries == nil {
		summaries = []dto.AppointmentSummary{}
	}
	response.Success(w, http.StatusOK, "Patients fetched successfully", "patients", summaries)
}

// GetAppointmentsByDoctor handles GET /api/patients/by-doctor/{doctor_id}
func (h *AppointmentHandler) GetAppointmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctor_id"]

	appointments, err := h.appointmentUsecase.GetAppointmentsByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	if appointments == nil {
		appointments = []dto.AppointmentResponse{}
	}
	response.Success(w, http.StatusOK, "Patients fetched successfully", "patients", appointments)
}

// GetAppointmentsByDate handles GET /api/patients/by-date/{date}
func (h *AppointmentHandler) GetAppointmentsByDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	appointments, err := h.appointmentUsecase.GetAppointmentsByDate(r.Context(), date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	if appointments == nil {
		appointments = []dto.AppointmentResponse{}
	}
	response.Success(w, http.StatusOK, "Patients fetched successfully", "patients", appointments)
}

// GetAppointment handles GET /api/patients/patient/{id}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient fetched successfully", "patient", appointment)
}

// UpdateAppointment handles PUT /api/patients/patients/{id}
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", "updated_patient", appointment)
}

// DeleteAppointment handles DELETE /api/patients/delete/{id}
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Message(w, http.StatusOK, "Appointment deleted successfully")
}

// RefreshStatuses handles GET /api/patients/update-status
func (h *AppointmentHandler) RefreshStatuses(w http.ResponseWriter, r *http.Request) {
	result, err := h.appointmentUsecase.RefreshStatuses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Internal server error")
		return
	}

	if result.Patients == nil {
		result.Patients = []dto.AppointmentStatus{}
	}
	response.JSON(w, http.StatusOK, result)
}
