package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/config"
	"github.com/santhoshsharuk/billing-api/internal/infrastructure/database"
	"github.com/santhoshsharuk/billing-api/internal/infrastructure/repository"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/handler"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/routes"
	"github.com/santhoshsharuk/billing-api/pkg/printer"
	"github.com/santhoshsharuk/billing-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local database
	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.App.Name, cfg.Auth.TokenExpiry)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize the receipt printer; a missing or broken transport is not
	// fatal, printing falls back to the plain-text spool.
	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: printer unavailable, receipts will be spooled: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(&cfg.Auth, jwtManager)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	cartService := service.NewCartService(invoiceRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(invoiceRepo)
	analyticsService := service.NewAnalyticsService(invoiceRepo, productRepo, categoryRepo)
	printerService := service.NewPrinterService(
		receiptPrinter,
		invoiceRepo,
		settingsService,
		cfg.Printer.Type,
		cfg.Printer.SpoolDir,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Cart:      handler.NewCartHandler(cartService, productService, settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
