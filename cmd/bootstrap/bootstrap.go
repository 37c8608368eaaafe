package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-backend/config"
	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/domain/activity"
	"clinic-backend/internal/infrastructure/cache"
	"clinic-backend/internal/infrastructure/database"
	"clinic-backend/internal/notification"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/clock"
	"clinic-backend/pkg/validator"

	deliveryHttp "clinic-backend/internal/delivery/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	window, err := buildWindow(cfg.Activity)
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.Activity.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Schema evolution happens once here, not per request: versioned base
	// migrations first, then the optional-column ensure pass.
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(db, database.ClinicTableSpecs()...); err != nil {
		return nil, err
	}
	logrus.Info("Database schema is up to date")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient, window)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func buildWindow(cfg config.ActivityConfig) (activity.Window, error) {
	policy, err := activity.ParsePolicy(cfg.WindowPolicy)
	if err != nil {
		return activity.Window{}, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return activity.Window{}, fmt.Errorf("invalid activity timezone %q: %w", cfg.Timezone, err)
	}
	return activity.Window{
		Duration: cfg.WindowDuration,
		Policy:   policy,
		Location: loc,
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, window activity.Window) *http.Server {
	customValidator := validator.NewValidator()

	accountRepo := repository.NewAccountRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	log := logrus.StandardLogger()

	mailer := notification.NewSMTPMailer(cfg.SMTP)
	nameCache := cache.NewDoctorNameCache(redisClient, cfg.Redis.NameCacheTTL)

	accountUsecase := usecase.NewAccountUsecase(db, log, accountRepo, mailer, nameCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, accountRepo, clock.System(), window)

	accountHandler := handler.NewAccountHandler(accountUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(accountHandler, appointmentHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:         serverAddr,
		Handler:      httpRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
