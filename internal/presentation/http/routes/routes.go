package routes

import (
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/config"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/handler"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/middleware"
	"github.com/ahamedrahman2000/njv-travels/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Order   *handler.OrderHandler
	Trip    *handler.TripHandler
	Report  *handler.ReportHandler
	Vehicle *handler.VehicleHandler
	Driver  *handler.DriverHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		duration := deps.Cfg.RateLimit.Duration
		if duration <= 0 {
			duration = 60
		}
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	protected.POST("/bookings", idempotent, h.Booking.Create)
	protected.POST("/bookings/preview", h.Booking.Preview)

	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/preview", h.Order.Preview)
		orders.POST("/:id/complete", idempotent, h.Order.Complete)
		orders.DELETE("/:id", h.Order.Delete)
	}

	trips := protected.Group("/trips")
	{
		trips.GET("", h.Trip.List)
		trips.GET("/export", h.Trip.Export)
		trips.GET("/:id", h.Trip.Get)
		trips.DELETE("/:id", h.Trip.Delete)
	}

	protected.GET("/dashboard", h.Report.Dashboard)
	protected.GET("/cashbook", h.Report.Cashbook)
	protected.GET("/cashbook/export", h.Report.ExportCashbook)

	vehicles := protected.Group("/vehicles")
	{
		vehicles.GET("", h.Vehicle.List)
		vehicles.POST("", h.Vehicle.Create)
		vehicles.GET("/:id", h.Vehicle.Get)
		vehicles.PUT("/:id", h.Vehicle.Update)
		vehicles.DELETE("/:id", h.Vehicle.Delete)
	}

	drivers := protected.Group("/drivers")
	{
		drivers.GET("", h.Driver.List)
		drivers.POST("", h.Driver.Create)
		drivers.GET("/:id", h.Driver.Get)
		drivers.PUT("/:id", h.Driver.Update)
		drivers.DELETE("/:id", h.Driver.Delete)
	}
}
