package services

import (
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PackageService interface {
	// Публичный просмотр: только активные пакеты
	List(db *gorm.DB, providerID string) (*dto.PackageListResponse, error)

	// Кабинет провайдера
	ListMine(db *gorm.DB, providerID string) (*dto.PackageListResponse, error)
	Create(db *gorm.DB, providerID string, req *dto.CreatePackageRequest) (*dto.PackageResponse, error)
	Update(db *gorm.DB, providerID, packageID string, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error)
	Delete(db *gorm.DB, providerID, packageID string) error
}

type PackageServiceImpl struct {
	packageRepo  repositories.PackageRepository
	providerRepo repositories.ProviderRepository
}

func NewPackageService(
	packageRepo repositories.PackageRepository,
	providerRepo repositories.ProviderRepository,
) PackageService {
	return &PackageServiceImpl{
		packageRepo:  packageRepo,
		providerRepo: providerRepo,
	}
}

func (s *PackageServiceImpl) List(db *gorm.DB, providerID string) (*dto.PackageListResponse, error) {
	return s.list(db, providerID, true)
}

func (s *PackageServiceImpl) ListMine(db *gorm.DB, providerID string) (*dto.PackageListResponse, error) {
	return s.list(db, providerID, false)
}

func (s *PackageServiceImpl) list(db *gorm.DB, providerID string, onlyActive bool) (*dto.PackageListResponse, error) {
	if _, err := s.providerRepo.FindByID(db, providerID); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	packages, err := s.packageRepo.ListByProvider(db, providerID, onlyActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.PackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, dto.NewPackageResponse(&packages[i]))
	}
	return &dto.PackageListResponse{Packages: out, Total: len(out)}, nil
}

func (s *PackageServiceImpl) Create(db *gorm.DB, providerID string, req *dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	if _, err := s.providerRepo.FindByID(db, providerID); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	pkg := &models.ProviderPackage{
		ProviderID:  providerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		IsActive:    true,
	}
	if pkg.Currency == "" {
		pkg.Currency = "USD"
	}
	if len(req.EventTypes) > 0 {
		pkg.SetEventTypes(req.EventTypes)
	}

	if err := s.packageRepo.Create(db, pkg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPackageResponse(pkg), nil
}

func (s *PackageServiceImpl) Update(db *gorm.DB, providerID, packageID string, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	pkg, err := s.findOwned(db, providerID, packageID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Currency != nil {
		pkg.Currency = *req.Currency
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if req.EventTypes != nil {
		pkg.SetEventTypes(req.EventTypes)
	}

	if err := s.packageRepo.Update(db, pkg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPackageResponse(pkg), nil
}

func (s *PackageServiceImpl) Delete(db *gorm.DB, providerID, packageID string) error {
	if _, err := s.findOwned(db, providerID, packageID); err != nil {
		return err
	}
	if err := s.packageRepo.Delete(db, packageID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Чужой пакет наружу не раскрывается, для него тот же 404
func (s *PackageServiceImpl) findOwned(db *gorm.DB, providerID, packageID string) (*models.ProviderPackage, error) {
	pkg, err := s.packageRepo.FindByID(db, packageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.NotFound("Package")
		}
		return nil, apperrors.InternalError(err)
	}
	if pkg.ProviderID != providerID {
		return nil, apperrors.NotFound("Package")
	}
	return pkg, nil
}
