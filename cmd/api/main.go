package main

import (
	"github.com/fleetdesk/fleetdesk-api/internal/application/service"
	"github.com/fleetdesk/fleetdesk-api/internal/config"
	"github.com/fleetdesk/fleetdesk-api/internal/infrastructure/database"
	"github.com/fleetdesk/fleetdesk-api/internal/infrastructure/repository"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/handler"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/routes"
	"github.com/fleetdesk/fleetdesk-api/internal/scheduler"
	"github.com/fleetdesk/fleetdesk-api/pkg/email"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	installmentRepo := repository.NewInstallmentRepository(db)
	billRepo := repository.NewBillRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	mailer := email.NewService(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		NotifyEmail:  cfg.Email.NotifyEmail,
	})

	// Services
	authService := service.NewAuthService(adminRepo, jwtManager)
	adminService := service.NewAdminService(adminRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, employeeRepo)
	paymentService := service.NewPaymentService(paymentRepo, installmentRepo, vehicleRepo)
	billService := service.NewBillService(billRepo, employeeRepo)
	reportService := service.NewReportService(reportRepo, paymentRepo, billRepo, vehicleRepo)

	// Handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, adminService, jwtManager, cfg.Bootstrap.DefaultPassword),
		Admin:    handler.NewAdminHandler(adminService),
		Employee: handler.NewEmployeeHandler(employeeService),
		Vehicle:  handler.NewVehicleHandler(vehicleService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Bill:     handler.NewBillHandler(billService),
		Report:   handler.NewReportHandler(reportService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Log:             log,
		IdempotencyRepo: idempotencyRepo,
	})

	sweeper := scheduler.NewExpirySweeper(vehicleRepo, idempotencyRepo, mailer, cfg.Scheduler, log)
	if err := sweeper.Start(); err != nil {
		log.WithError(err).Fatal("failed to start expiry sweeper")
	}
	defer sweeper.Stop()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"env":     cfg.App.Env,
		"port":    port,
	}).Info("starting server")

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
