package routes

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/config"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/handler"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/middleware"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Admin    *handler.AdminHandler
	Employee *handler.EmployeeHandler
	Vehicle  *handler.VehicleHandler
	Payment  *handler.PaymentHandler
	Bill     *handler.BillHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Log             *logrus.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/init", h.Auth.Init)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewAdminRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)

	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo, Log: deps.Log})

	employees := protected.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.POST("", h.Employee.Create)
		employees.POST("/bulk", h.Employee.BulkImport)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
		employees.POST("/:id/terminate", h.Employee.Terminate)
	}

	vehicles := protected.Group("/vehicles")
	{
		vehicles.GET("", h.Vehicle.List)
		vehicles.POST("", h.Vehicle.Create)
		vehicles.POST("/bulk", h.Vehicle.BulkImport)
		vehicles.GET("/:id", h.Vehicle.Get)
		vehicles.PUT("/:id", h.Vehicle.Update)
		vehicles.DELETE("/:id", h.Vehicle.Delete)
		vehicles.POST("/:id/terminate", h.Vehicle.Terminate)
	}

	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.POST("", idempotency, h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
		payments.PUT("/:id", h.Payment.Update)
		payments.DELETE("/:id", h.Payment.Delete)
		payments.GET("/:id/installments", h.Payment.ListInstallments)
		payments.POST("/:id/installments", idempotency, h.Payment.AddInstallment)
	}

	installments := protected.Group("/installments")
	{
		installments.PUT("/:installmentId", h.Payment.UpdateInstallment)
		installments.DELETE("/:installmentId", h.Payment.DeleteInstallment)
	}

	bills := protected.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", idempotency, h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.PUT("/:id", h.Bill.Update)
		bills.DELETE("/:id", h.Bill.Delete)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/employees", h.Report.Employees)
		reports.GET("/vehicles/:id/payments", h.Report.VehiclePayments)
		reports.GET("/payments", h.Report.Payments)
		reports.GET("/bills", h.Report.Bills)
	}

	// Account management is reserved for super admins
	admins := protected.Group("/admins")
	admins.Use(middleware.RequireRole(enum.AdminRoleSuperAdmin))
	{
		admins.GET("", h.Admin.List)
		admins.POST("", h.Admin.Create)
		admins.GET("/:id", h.Admin.Get)
		admins.PUT("/:id", h.Admin.Update)
		admins.DELETE("/:id", h.Admin.Delete)
	}
}
