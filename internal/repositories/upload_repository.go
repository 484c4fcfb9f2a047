package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	FindByID(db *gorm.DB, id string) (*models.Upload, error)
	FindByPath(db *gorm.DB, path string) (*models.Upload, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Upload, error)
	Delete(db *gorm.DB, id string) error
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *UploadRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Upload, error) {
	var upload models.Upload
	err := db.First(&upload, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByPath(db *gorm.DB, path string) (*models.Upload, error) {
	var upload models.Upload
	err := db.First(&upload, "path = ?", path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&uploads).Error
	return uploads, err
}

func (r *UploadRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Upload{}, "id = ?", id).Error
}
