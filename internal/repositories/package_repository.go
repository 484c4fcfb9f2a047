package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageRepository interface {
	Create(db *gorm.DB, pkg *models.ProviderPackage) error
	FindByID(db *gorm.DB, id string) (*models.ProviderPackage, error)
	ListByProvider(db *gorm.DB, providerID string, onlyActive bool) ([]models.ProviderPackage, error)
	Update(db *gorm.DB, pkg *models.ProviderPackage) error
	Delete(db *gorm.DB, id string) error
}

type PackageRepositoryImpl struct{}

func NewPackageRepository() PackageRepository {
	return &PackageRepositoryImpl{}
}

func (r *PackageRepositoryImpl) Create(db *gorm.DB, pkg *models.ProviderPackage) error {
	return db.Create(pkg).Error
}

func (r *PackageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ProviderPackage, error) {
	var pkg models.ProviderPackage
	err := db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) ListByProvider(db *gorm.DB, providerID string, onlyActive bool) ([]models.ProviderPackage, error) {
	query := db.Where("provider_id = ?", providerID)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var packages []models.ProviderPackage
	err := query.Order("price ASC").Find(&packages).Error
	return packages, err
}

func (r *PackageRepositoryImpl) Update(db *gorm.DB, pkg *models.ProviderPackage) error {
	return db.Model(pkg).Updates(map[string]interface{}{
		"name":        pkg.Name,
		"description": pkg.Description,
		"price":       pkg.Price,
		"currency":    pkg.Currency,
		"is_active":   pkg.IsActive,
		"event_types": pkg.EventTypes,
	}).Error
}

func (r *PackageRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.ProviderPackage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPackageNotFound
	}
	return nil
}
