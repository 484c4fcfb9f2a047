package services

import (
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/internal/utils"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CatalogService обслуживает оба справочника: услуги и типы событий.
// Идентификатор записи - слаг, производный от label ("Baby Shower" ->
// "baby-shower"), после создания он не меняется.
type CatalogService interface {
	ListServices(db *gorm.DB, onlyActive bool) (*dto.CatalogListResponse, error)
	CreateService(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error)
	SetServiceStatus(db *gorm.DB, id string, status models.CatalogStatus) error
	DeleteService(db *gorm.DB, id string) error
	AdminListServices(db *gorm.DB) (*dto.CatalogAdminListResponse, error)

	ListEventTypes(db *gorm.DB, onlyActive bool) (*dto.CatalogListResponse, error)
	CreateEventType(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error)
	SetEventTypeStatus(db *gorm.DB, id string, status models.CatalogStatus) error
	DeleteEventType(db *gorm.DB, id string) error
	AdminListEventTypes(db *gorm.DB) (*dto.CatalogAdminListResponse, error)
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// --- Услуги ---

func (s *CatalogServiceImpl) ListServices(db *gorm.DB, onlyActive bool) (*dto.CatalogListResponse, error) {
	services, err := s.catalogRepo.ListServices(db, onlyActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]*dto.CatalogEntryResponse, 0, len(services))
	for i := range services {
		entries = append(entries, dto.NewServiceResponse(&services[i]))
	}
	return &dto.CatalogListResponse{Entries: entries, Total: len(entries)}, nil
}

func (s *CatalogServiceImpl) CreateService(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	slug := utils.Slugify(req.Label)
	if slug == "" {
		return nil, apperrors.NewBadRequestError("Label must contain at least one letter or digit")
	}

	service := &models.Service{
		ID:     slug,
		Label:  req.Label,
		Status: models.CatalogStatusActive,
	}
	if err := s.catalogRepo.CreateService(db, service); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateLabel) {
			return nil, apperrors.ErrDuplicateLabel
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewServiceResponse(service), nil
}

func (s *CatalogServiceImpl) SetServiceStatus(db *gorm.DB, id string, status models.CatalogStatus) error {
	if err := s.catalogRepo.UpdateServiceStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrCatalogEntryNotFound) {
			return apperrors.ErrCatalogEntryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) DeleteService(db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeleteService(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCatalogEntryNotFound) {
			return apperrors.ErrCatalogEntryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) AdminListServices(db *gorm.DB) (*dto.CatalogAdminListResponse, error) {
	services, err := s.catalogRepo.ListServices(db, false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	counts, err := s.catalogRepo.ServiceProviderCounts(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]*dto.CatalogAdminRow, 0, len(services))
	for i := range services {
		entries = append(entries, dto.NewServiceAdminRow(&services[i], counts[services[i].ID]))
	}
	return &dto.CatalogAdminListResponse{Entries: entries, Total: len(entries)}, nil
}

// --- Типы событий ---

func (s *CatalogServiceImpl) ListEventTypes(db *gorm.DB, onlyActive bool) (*dto.CatalogListResponse, error) {
	eventTypes, err := s.catalogRepo.ListEventTypes(db, onlyActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]*dto.CatalogEntryResponse, 0, len(eventTypes))
	for i := range eventTypes {
		entries = append(entries, dto.NewEventTypeResponse(&eventTypes[i]))
	}
	return &dto.CatalogListResponse{Entries: entries, Total: len(entries)}, nil
}

func (s *CatalogServiceImpl) CreateEventType(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	slug := utils.Slugify(req.Label)
	if slug == "" {
		return nil, apperrors.NewBadRequestError("Label must contain at least one letter or digit")
	}

	eventType := &models.EventType{
		ID:     slug,
		Label:  req.Label,
		Status: models.CatalogStatusActive,
	}
	if err := s.catalogRepo.CreateEventType(db, eventType); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateLabel) {
			return nil, apperrors.ErrDuplicateLabel
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewEventTypeResponse(eventType), nil
}

func (s *CatalogServiceImpl) SetEventTypeStatus(db *gorm.DB, id string, status models.CatalogStatus) error {
	if err := s.catalogRepo.UpdateEventTypeStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrCatalogEntryNotFound) {
			return apperrors.ErrCatalogEntryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) DeleteEventType(db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeleteEventType(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCatalogEntryNotFound) {
			return apperrors.ErrCatalogEntryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) AdminListEventTypes(db *gorm.DB) (*dto.CatalogAdminListResponse, error) {
	eventTypes, err := s.catalogRepo.ListEventTypes(db, false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	counts, err := s.catalogRepo.EventTypeProviderCounts(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]*dto.CatalogAdminRow, 0, len(eventTypes))
	for i := range eventTypes {
		entries = append(entries, dto.NewEventTypeAdminRow(&eventTypes[i], counts[eventTypes[i].ID]))
	}
	return &dto.CatalogAdminListResponse{Entries: entries, Total: len(entries)}, nil
}
