package main

import (
	"context"
	"log"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/config"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/internal/infrastructure/database"
	"github.com/ahamedrahman2000/njv-travels/internal/infrastructure/memory"
	"github.com/ahamedrahman2000/njv-travels/internal/infrastructure/repository"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/handler"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/middleware"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/routes"
	"github.com/ahamedrahman2000/njv-travels/pkg/email"
	"github.com/ahamedrahman2000/njv-travels/pkg/utils"
	"github.com/gin-gonic/gin"
)

// repositories bundles the record store for either storage driver
type repositories struct {
	engagements domainRepo.EngagementRepository
	vehicles    domainRepo.VehicleRepository
	drivers     domainRepo.DriverRepository
	operators   domainRepo.OperatorRepository
	idempotency domainRepo.IdempotencyRepository
	resetTokens domainRepo.PasswordResetTokenRepository
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos := openRepositories(cfg)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})
	if cfg.Email.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set, password reset emails will not be sent")
	}

	// Initialize services
	authService := service.NewAuthService(repos.operators, repos.resetTokens, jwtManager, emailService)
	lifecycleService := service.NewLifecycleService(repos.engagements)
	dashboardService := service.NewDashboardService(repos.engagements, repos.vehicles, repos.drivers)
	exportService := service.NewExportService(repos.engagements, dashboardService)
	vehicleService := service.NewVehicleService(repos.vehicles)
	driverService := service.NewDriverService(repos.drivers)

	// Seed the operator account if configured
	if cfg.Operator.Email != "" && cfg.Operator.Password != "" {
		if _, err := authService.EnsureOperator(context.Background(), cfg.Operator.Email, cfg.Operator.Password, cfg.Operator.Name); err != nil {
			log.Printf("Warning: Failed to seed operator account: %v", err)
		}
	} else {
		log.Println("Warning: OPERATOR_EMAIL/OPERATOR_PASSWORD not set, no operator account seeded")
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Booking: handler.NewBookingHandler(lifecycleService),
		Order:   handler.NewOrderHandler(lifecycleService),
		Trip:    handler.NewTripHandler(lifecycleService, exportService),
		Report:  handler.NewReportHandler(dashboardService, exportService),
		Vehicle: handler.NewVehicleHandler(vehicleService),
		Driver:  handler.NewDriverHandler(driverService),
	}

	go middleware.SweepIdempotencyKeys(context.Background(), repos.idempotency, time.Hour)

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: repos.idempotency,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, storage: %s", cfg.App.Env, cfg.Storage.Driver)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openRepositories(cfg *config.Config) *repositories {
	if cfg.Storage.UsesMemory() {
		log.Println("Using in-memory record store; data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			engagements: store.Engagements(),
			vehicles:    store.Vehicles(),
			drivers:     store.Drivers(),
			operators:   store.Operators(),
			idempotency: store.Idempotency(),
			resetTokens: store.PasswordResetTokens(),
		}
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return &repositories{
		engagements: repository.NewEngagementRepository(db),
		vehicles:    repository.NewVehicleRepository(db),
		drivers:     repository.NewDriverRepository(db),
		operators:   repository.NewOperatorRepository(db),
		idempotency: repository.NewIdempotencyRepository(db),
		resetTokens: repository.NewPasswordResetTokenRepository(db),
	}
}
