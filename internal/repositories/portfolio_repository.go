package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error)
	ListByProvider(db *gorm.DB, providerID string) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, item *models.PortfolioItem) error
	Delete(db *gorm.DB, id string) error
	CountByProvider(db *gorm.DB, providerID string) (int64, error)
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.Preload("Upload").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) ListByProvider(db *gorm.DB, providerID string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Preload("Upload").
		Where("provider_id = ?", providerID).
		Order("featured DESC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) Update(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Model(item).Updates(map[string]interface{}{
		"youtube_url": item.YoutubeURL,
		"featured":    item.Featured,
	}).Error
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.PortfolioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *PortfolioRepositoryImpl) CountByProvider(db *gorm.DB, providerID string) (int64, error) {
	var total int64
	err := db.Model(&models.PortfolioItem{}).
		Where("provider_id = ?", providerID).
		Count(&total).Error
	return total, err
}
