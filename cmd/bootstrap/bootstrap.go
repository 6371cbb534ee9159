package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-frontdesk/config"
	deliveryHttp "clinic-frontdesk/internal/delivery/http"
	"clinic-frontdesk/internal/delivery/http/handler"
	"clinic-frontdesk/internal/delivery/http/middleware"
	"clinic-frontdesk/internal/infrastructure/cache"
	"clinic-frontdesk/internal/infrastructure/database"
	"clinic-frontdesk/internal/repository"
	"clinic-frontdesk/internal/service"
	"clinic-frontdesk/internal/usecase"
	"clinic-frontdesk/pkg/jwt"
	"clinic-frontdesk/pkg/validator"

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

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	appointmentRepo := repository.NewAppointmentRepository()
	blockedDateRepo := repository.NewBlockedDateRepository()
	settingRepo := repository.NewSettingRepository()
	paymentRepo := repository.NewPaymentRepository()
	followupRepo := repository.NewFollowupRepository()
	userRepo := repository.NewUserRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Domain services. The announcer is the single in-process channel
	// between the desk and every waiting-room display connection.
	announcer := service.NewAnnouncer()
	notifier := service.BuildNotifier(log, cfg.Telegram.Token, cfg.Telegram.ChatID)
	auditService := service.NewAuditService(db, log, auditLogRepo)
	availabilityService := service.NewAvailabilityService(db, log, appointmentRepo, blockedDateRepo, settingRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, followupRepo, paymentRepo, availabilityService, auditService, notifier)
	queueUsecase := usecase.NewQueueUsecase(db, log, appointmentRepo, announcer, auditService)
	blockedDateUsecase := usecase.NewBlockedDateUsecase(db, log, blockedDateRepo, auditService)
	settingsUsecase := usecase.NewSettingsUsecase(db, log, settingRepo, availabilityService, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, appointmentRepo, availabilityService, auditService, notifier)
	followupUsecase := usecase.NewFollowupUsecase(db, log, followupRepo, appointmentRepo, availabilityService, notifier)
	statsUsecase := usecase.NewStatsUsecase(db, log, appointmentRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, followupUsecase, customValidator)
	queueHandler := handler.NewQueueHandler(queueUsecase, customValidator)
	streamHandler := handler.NewStreamHandler(log, announcer, cfg.Stream.KeepAliveInterval)
	blockedDateHandler := handler.NewBlockedDateHandler(blockedDateUsecase, customValidator)
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		queueHandler,
		streamHandler,
		blockedDateHandler,
		settingsHandler,
		paymentHandler,
		statsHandler,
		userHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
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
