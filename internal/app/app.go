package app

import (
	"errors"
	"fmt"

	"evently_backend/database"
	"evently_backend/internal/auth"
	"evently_backend/internal/config"
	"evently_backend/internal/email"
	"evently_backend/internal/handlers"
	"evently_backend/internal/logger"
	"evently_backend/internal/middleware"
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/routes"
	"evently_backend/internal/services"
	"evently_backend/internal/storage"
	"evently_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("Email is disabled, using mock provider")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	providerRepo := repositories.NewProviderRepository()
	catalogRepo := repositories.NewCatalogRepository()
	planRepo := repositories.NewPlanRepository()
	enquiryRepo := repositories.NewEnquiryRepository()
	reportRepo := repositories.NewReportRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	packageRepo := repositories.NewPackageRepository()
	uploadRepo := repositories.NewUploadRepository()

	uploadService := services.NewUploadService(uploadRepo, storageInstance)
	authService := services.NewAuthService(userRepo, providerRepo, refreshTokenRepo, emailProvider)
	userService := services.NewUserService(userRepo, providerRepo, refreshTokenRepo)
	providerService := services.NewProviderService(providerRepo, planRepo, enquiryRepo, portfolioRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	planService := services.NewPlanService(planRepo)
	enquiryService := services.NewEnquiryService(enquiryRepo, providerRepo, emailProvider)
	reportService := services.NewReportService(reportRepo, providerRepo)
	portfolioService := services.NewPortfolioService(portfolioRepo, providerRepo, uploadService)
	packageService := services.NewPackageService(packageRepo, providerRepo)
	checklistService := services.NewChecklistService()

	return &services.ServiceContainer{
		AuthService:      authService,
		UserService:      userService,
		ProviderService:  providerService,
		CatalogService:   catalogService,
		PlanService:      planService,
		EnquiryService:   enquiryService,
		ReportService:    reportService,
		PortfolioService: portfolioService,
		PackageService:   packageService,
		UploadService:    uploadService,
		ChecklistService: checklistService,
		EmailProvider:    emailProvider,
		Storage:          storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:      handlers.NewUserHandler(baseHandler, container.UserService, container.EnquiryService),
		ProviderHandler:  handlers.NewProviderHandler(baseHandler, container.ProviderService, container.EnquiryService),
		CatalogHandler:   handlers.NewCatalogHandler(baseHandler, container.CatalogService),
		PlanHandler:      handlers.NewPlanHandler(baseHandler, container.PlanService),
		EnquiryHandler:   handlers.NewEnquiryHandler(baseHandler, container.EnquiryService),
		ReportHandler:    handlers.NewReportHandler(baseHandler, container.ReportService),
		PortfolioHandler: handlers.NewPortfolioHandler(baseHandler, container.PortfolioService),
		PackageHandler:   handlers.NewPackageHandler(baseHandler, container.PackageService),
		UploadHandler:    handlers.NewUploadHandler(baseHandler, container.UploadService),
		FileHandler:      handlers.NewFileHandler(baseHandler, container.Storage, repositories.NewUploadRepository()),
		ChecklistHandler: handlers.NewChecklistHandler(baseHandler, container.ChecklistService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого админа из конфига, если его еще нет.
// Без email/пароля в конфиге сидинг молча пропускается.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.Profile
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	fullName := cfg.Admin.FullName
	if fullName == "" {
		fullName = "Platform Admin"
	}

	admin := &models.Profile{
		FullName:     fullName,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
