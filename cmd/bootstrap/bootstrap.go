package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-api/config"
	deliveryHttp "dental-clinic-api/internal/delivery/http"
	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/infrastructure/cache"
	"dental-clinic-api/internal/infrastructure/database"
	"dental-clinic-api/internal/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/jwt"
	"dental-clinic-api/pkg/pagination"
	"dental-clinic-api/pkg/timeutil"
	"dental-clinic-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set while AUTH_ENABLED is true")

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	if cfg.JWT.Enabled && cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	app := &App{Config: cfg, Log: log}

	clinicZone, err := timeutil.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Redis holds the access-token allowlist, so it is only needed with auth on
	if cfg.JWT.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.RedisClient = redisClient
	} else {
		log.Warn("Authentication is disabled; every route is public")
	}

	app.Server = initializeServer(cfg, log, db, app.RedisClient, timeutil.ClockIn(clinicZone))

	return app, nil
}

// NewLogger configures the logrus logger
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client, clock func() time.Time) *http.Server {
	customValidator := validator.NewValidator()
	paginator := pagination.NewPaginator(cfg.Pagination.MaxLimit)

	// Initialize repositories
	personnelRepo := repository.NewPersonnelRepository()
	patientRepo := repository.NewPatientRepository()
	roomRepo := repository.NewRoomRepository()
	sessionRepo := repository.NewSessionRepository()
	treatmentRepo := repository.NewTreatmentSessionRepository()
	catalogRepo := repository.NewCatalogRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, personnelRepo, patientRepo)
	sessionUsecase := usecase.NewSessionUsecase(db, log, clock, sessionRepo, treatmentRepo, patientRepo, personnelRepo, roomRepo, auditService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, roomRepo, catalogRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	personnelHandler := handler.NewPersonnelHandler(directoryUsecase, paginator)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, paginator, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, paginator)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Initialize middleware
	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.Enabled {
		authMiddleware = middleware.NewAuthMiddleware(jwt.NewJWTService(cfg.JWT), redisClient, log)
	}
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(log, personnelHandler, sessionHandler, catalogHandler, auditLogHandler, healthHandler, authMiddleware, corsMiddleware)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	return app.shutdown()
}

func (app *App) shutdown() error {
	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := app.Server.Shutdown(ctx)
	if err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return err
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
