package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"evently_backend/internal/config"
	"evently_backend/internal/logger"
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/storage"
	"evently_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadService - загрузка файлов в хранилище с бухгалтерией в таблице
// uploads. Лимит размера и белый список MIME-типов берутся из конфига.
type UploadService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader, usage, entityType, entityID string) (*models.Upload, error)
	Get(db *gorm.DB, id string) (*models.Upload, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Upload, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type UploadServiceImpl struct {
	uploadRepo repositories.UploadRepository
	store      storage.Storage
}

func NewUploadService(uploadRepo repositories.UploadRepository, store storage.Storage) UploadService {
	return &UploadServiceImpl{
		uploadRepo: uploadRepo,
		store:      store,
	}
}

func (s *UploadServiceImpl) Upload(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader, usage, entityType, entityID string) (*models.Upload, error) {
	cfg := config.GetConfig()

	if file.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge.WithDetails(map[string]any{
			"max_size": cfg.Upload.MaxSize,
			"size":     file.Size,
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedType(contentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType.WithDetails(map[string]any{
			"content_type": contentType,
			"allowed":      cfg.Upload.AllowedTypes,
		})
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	// Имя файла генерируется заново, оригинальное остается в записи
	filename := fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(file.Filename)))
	path := storage.ObjectPath(userID, usage, filename)

	if err := s.store.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		UserID:          userID,
		EntityType:      entityType,
		EntityID:        entityID,
		Usage:           usage,
		Path:            path,
		URL:             url,
		OriginalName:    file.Filename,
		MimeType:        contentType,
		Size:            file.Size,
		IsPublic:        cfg.Storage.PublicRead || cfg.Storage.Type == "local",
		StorageProvider: cfg.Storage.Type,
	}

	if err := s.uploadRepo.Create(db, upload); err != nil {
		// Запись не создалась - файл в хранилище не оставляем
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.WithError(delErr).Warn("failed to clean up orphaned file", "path", path)
		}
		return nil, apperrors.InternalError(err)
	}
	return upload, nil
}

func (s *UploadServiceImpl) Get(db *gorm.DB, id string) (*models.Upload, error) {
	upload, err := s.uploadRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return nil, apperrors.NotFound("Upload")
		}
		return nil, apperrors.InternalError(err)
	}
	return upload, nil
}

func (s *UploadServiceImpl) ListByUser(db *gorm.DB, userID string) ([]models.Upload, error) {
	uploads, err := s.uploadRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return uploads, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	upload, err := s.uploadRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return apperrors.NotFound("Upload")
		}
		return apperrors.InternalError(err)
	}

	if err := s.store.Delete(ctx, upload.Path); err != nil {
		logger.WithError(err).Warn("failed to delete file from storage", "path", upload.Path)
	}

	if err := s.uploadRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func allowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
