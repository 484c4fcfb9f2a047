package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	ProviderHandler  *ProviderHandler
	CatalogHandler   *CatalogHandler
	PlanHandler      *PlanHandler
	EnquiryHandler   *EnquiryHandler
	ReportHandler    *ReportHandler
	PortfolioHandler *PortfolioHandler
	PackageHandler   *PackageHandler
	UploadHandler    *UploadHandler
	FileHandler      *FileHandler
	ChecklistHandler *ChecklistHandler
}
