package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/config"
	"github.com/newgenpools/site-api/internal/infrastructure/database"
	"github.com/newgenpools/site-api/internal/infrastructure/repository"
	"github.com/newgenpools/site-api/internal/presentation/http/handler"
	"github.com/newgenpools/site-api/internal/presentation/http/routes"
	"github.com/newgenpools/site-api/pkg/email"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
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

	// Seed settings row and bootstrap admin
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	imageRepo := repository.NewImageRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize email service
	emailService := email.NewService(email.Config{
		SMTPHost:    cfg.Mail.SMTPHost,
		SMTPPort:    cfg.Mail.SMTPPort,
		SMTPUser:    cfg.Mail.SMTPUser,
		SMTPPass:    cfg.Mail.SMTPPass,
		FromName:    cfg.Mail.FromName,
		FromEmail:   cfg.Mail.FromEmail,
		NotifyEmail: cfg.Mail.NotifyEmail,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, &cfg.Admin)
	settingsService := service.NewSettingsService(settingsRepo)
	customerService := service.NewCustomerService(customerRepo, saleRepo)
	saleService := service.NewSaleService(saleRepo, customerRepo, productRepo, settingsService)
	productService := service.NewProductService(productRepo)
	catalogService := service.NewServiceCatalogService(serviceRepo)
	projectService := service.NewProjectService(projectRepo)
	mediaService := service.NewMediaService(imageRepo, cfg.Upload.MaxSize)
	contactService := service.NewContactService(messageRepo, productRepo, emailService)
	dashboardService := service.NewDashboardService(customerRepo, productRepo, serviceRepo, projectRepo, saleRepo, messageRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Public:    handler.NewPublicHandler(settingsService, catalogService, projectService, productService),
		Contact:   handler.NewContactHandler(contactService),
		Media:     handler.NewMediaHandler(mediaService),
		Customer:  handler.NewCustomerHandler(customerService, saleService),
		Sale:      handler.NewSaleHandler(saleService),
		Product:   handler.NewProductHandler(productService),
		Service:   handler.NewServiceHandler(catalogService),
		Project:   handler.NewProjectHandler(projectService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),

		IdempotencyRepo: repository.NewIdempotencyRepository(db),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
