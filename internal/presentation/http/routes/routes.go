package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/config"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/handler"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/middleware"
	"github.com/santhoshsharuk/billing-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Invoice   *handler.InvoiceHandler
	Cart      *handler.CartHandler
	Dashboard *handler.DashboardHandler
	Analytics *handler.AnalyticsHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Categories
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Invoices
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}

	// Carts
	carts := protected.Group("/carts")
	{
		carts.POST("", h.Cart.Create)
		carts.GET("/:id", h.Cart.Get)
		carts.POST("/:id/items", h.Cart.AddItem)
		carts.PATCH("/:id/items/:productId", h.Cart.UpdateQuantity)
		carts.POST("/:id/commit", h.Cart.Commit)
	}

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Analytics
	analytics := protected.Group("/analytics")
	{
		analytics.GET("/report", h.Analytics.Report)
		analytics.GET("/comparison", h.Analytics.Comparison)
	}

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", h.Printer.Test)
		printer.POST("/print", h.Printer.Print)
	}
}
