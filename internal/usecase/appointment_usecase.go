package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/activity"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("patient not found")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
)

const (
	statusActive   = "active"
	statusInactive = "no active"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentSummary, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID string) ([]dto.AppointmentResponse, error)
	GetAppointmentsByDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	RefreshStatuses(ctx context.Context) (*dto.StatusRefreshResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	accountRepo     repository.AccountRepository
	clk             clock.Clock
	window          activity.Window
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	accountRepo repository.AccountRepository,
	clk clock.Clock,
	window activity.Window,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		accountRepo:     accountRepo,
		clk:             clk,
		window:          window,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, tod, err := parseSchedule(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	var doctorID *string
	if req.DoctorID != "" {
		account, err := u.accountRepo.FindByDoctorID(ctx, u.db, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to look up doctor %s: %+v", req.DoctorID, err)
			return nil, err
		}
		if account == nil {
			return nil, ErrDoctorNotFound
		}
		doctorID = &req.DoctorID
	}

	appointment := &entity.Appointment{
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		Age:             req.Age,
		Gender:          req.Gender,
		Disease:         req.Disease,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: tod,
		// Activation only ever comes from the status evaluator.
		IsActive: false,

		InitialComplaints: req.InitialComplaints,
		MedicalHistory:    req.MedicalHistory,
		FamilyHistory:     req.FamilyHistory,
		SocialHistory:     req.SocialHistory,
		OnMedications:     req.OnMedications,
		Vitals:            req.Vitals,
		Allergies:         req.Allergies,
		Surgeries:         req.Surgeries,
		Location:          req.Location,
		Professional:      req.Professional,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return appointmentResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentSummary, error) {
	appointments, err := u.appointmentRepo.ListIDNames(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	summaries := make([]dto.AppointmentSummary, len(appointments))
	for i, a := range appointments {
		summaries[i] = dto.AppointmentSummary{ID: a.ID, Name: a.Name}
	}
	return summaries, nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID string) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return appointmentResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointmentsByDate(ctx context.Context, date string) ([]dto.AppointmentResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByDate(ctx, u.db, day)
	if err != nil {
		u.log.Warnf("Failed to list appointments on %s: %+v", date, err)
		return nil, err
	}
	return appointmentResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointmentResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, tod, err := parseSchedule(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.AppointmentDate = date
	appointment.AppointmentTime = tod
	appointment.InitialComplaints = req.InitialComplaints
	appointment.MedicalHistory = req.MedicalHistory
	appointment.FamilyHistory = req.FamilyHistory
	appointment.SocialHistory = req.SocialHistory
	appointment.OnMedications = req.OnMedications
	appointment.Vitals = req.Vitals
	appointment.Allergies = req.Allergies
	appointment.Surgeries = req.Surgeries
	appointment.Location = req.Location
	appointment.Professional = req.Professional
	// Rescheduling always clears active status; the next status refresh
	// decides whether the new slot is live.
	appointment.IsActive = false

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	return appointmentResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	return nil
}

func (u *appointmentUsecase) RefreshStatuses(ctx context.Context) (*dto.StatusRefreshResponse, error) {
	now := u.clk.Now().In(u.window.Location)

	appointments, err := u.appointmentRepo.RefreshStatuses(ctx, u.db, func(a *entity.Appointment) bool {
		return activity.Evaluate(a.AppointmentDate, a.AppointmentTime, now, u.window)
	})
	if err != nil {
		u.log.Warnf("Failed to refresh appointment statuses: %+v", err)
		return nil, err
	}

	statuses := make([]dto.AppointmentStatus, len(appointments))
	for i := range appointments {
		a := &appointments[i]

		status := dto.AppointmentStatus{
			Name:   a.Name,
			Status: statusInactive,
		}
		if a.IsActive {
			status.Status = statusActive
		}
		if a.AppointmentDate != nil {
			status.AppointmentDate = a.AppointmentDate.Format("2006-01-02")
		}
		if a.AppointmentTime != nil {
			status.AppointmentTime = *a.AppointmentTime
		}
		if ts, ok := activity.Timestamp(a.AppointmentDate, a.AppointmentTime, u.window.Location); ok {
			status.AppointmentTimestamp = ts.Format("2006-01-02 15:04:05")
		}
		statuses[i] = status
	}

	return &dto.StatusRefreshResponse{
		Message:     "Patient statuses updated successfully",
		Patients:    statuses,
		CurrentTime: now.Format("2006-01-02 15:04:05"),
	}, nil
}

// parseSchedule validates the optional date and time strings from a
// request and normalizes them into storage form. Empty strings stay nil.
func parseSchedule(dateStr, timeStr string) (*time.Time, *string, error) {
	var date *time.Time
	if dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, nil, ErrInvalidDateFormat
		}
		date = &d
	}

	var tod *string
	if timeStr != "" {
		parsed := false
		for _, layout := range []string{"15:04:05", "15:04"} {
			if t, err := time.Parse(layout, timeStr); err == nil {
				normalized := t.Format("15:04:05")
				tod = &normalized
				parsed = true
				break
			}
		}
		if !parsed {
			return nil, nil, ErrInvalidTimeFormat
		}
	}

	return date, tod, nil
}

func appointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		Address:     a.Address,
		Age:         a.Age,
		Gender:      a.Gender,
		Disease:     a.Disease,
		IsActive:    a.IsActive,

		InitialComplaints: a.InitialComplaints,
		MedicalHistory:    a.MedicalHistory,
		FamilyHistory:     a.FamilyHistory,
		SocialHistory:     a.SocialHistory,
		OnMedications:     a.OnMedications,
		Vitals:            a.Vitals,
		Allergies:         a.Allergies,
		Surgeries:         a.Surgeries,
		Location:          a.Location,
		Professional:      a.Professional,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.DoctorID != nil {
		resp.DoctorID = *a.DoctorID
	}
	if a.AppointmentDate != nil {
		resp.AppointmentDate = a.AppointmentDate.Format("2006-01-02")
	}
	if a.AppointmentTime != nil {
		resp.AppointmentTime = *a.AppointmentTime
	}
	return resp
}

func appointmentResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *appointmentResponse(&appointments[i])
	}
	return responses
}
