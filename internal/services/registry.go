package services

import (
	"evently_backend/internal/email"
	"evently_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	ProviderService  ProviderService
	CatalogService   CatalogService
	PlanService      PlanService
	EnquiryService   EnquiryService
	ReportService    ReportService
	PortfolioService PortfolioService
	PackageService   PackageService
	UploadService    UploadService
	ChecklistService ChecklistService
	EmailProvider    email.Provider
	Storage          storage.Storage
}
