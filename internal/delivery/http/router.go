package http

import (
	"net/http"

	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	accountHandler     *handler.AccountHandler
	appointmentHandler *handler.AppointmentHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	accountHandler *handler.AccountHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		accountHandler:     accountHandler,
		appointmentHandler: appointmentHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Admin/doctor account routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/admin", r.accountHandler.CreateAccount).Methods(http.MethodPost)
	admin.HandleFunc("/login", r.accountHandler.Login).Methods(http.MethodPost)
	admin.HandleFunc("/change-password", r.accountHandler.ChangePassword).Methods(http.MethodPost)
	admin.HandleFunc("/doctor-name", r.accountHandler.ListDoctorNames).Methods(http.MethodPost)

	// Patient appointment routes
	patients := api.PathPrefix("/patients").Subrouter()
	patients.HandleFunc("/create", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patients.HandleFunc("/all", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	patients.HandleFunc("/by-doctor/{doctor_id}", r.appointmentHandler.GetAppointmentsByDoctor).Methods(http.MethodGet)
	patients.HandleFunc("/by-date/{date}", r.appointmentHandler.GetAppointmentsByDate).Methods(http.MethodGet)
	patients.HandleFunc("/patient/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	patients.HandleFunc("/patients/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	patients.HandleFunc("/delete/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	patients.HandleFunc("/update-status", r.appointmentHandler.RefreshStatuses).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
