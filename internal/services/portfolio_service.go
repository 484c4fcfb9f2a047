package services

import (
	"context"
	"mime/multipart"

	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	// Публичный просмотр
	List(db *gorm.DB, providerID string) (*dto.PortfolioListResponse, error)

	// Кабинет провайдера
	AddPhoto(ctx context.Context, db *gorm.DB, providerID string, file *multipart.FileHeader, featured bool) (*dto.PortfolioItemResponse, error)
	AddVideo(db *gorm.DB, providerID string, req *dto.CreatePortfolioRequest) (*dto.PortfolioItemResponse, error)
	Update(db *gorm.DB, providerID, itemID string, req *dto.UpdatePortfolioRequest) (*dto.PortfolioItemResponse, error)
	Delete(ctx context.Context, db *gorm.DB, providerID, itemID string) error
}

type PortfolioServiceImpl struct {
	portfolioRepo repositories.PortfolioRepository
	providerRepo  repositories.ProviderRepository
	uploadService UploadService
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	providerRepo repositories.ProviderRepository,
	uploadService UploadService,
) PortfolioService {
	return &PortfolioServiceImpl{
		portfolioRepo: portfolioRepo,
		providerRepo:  providerRepo,
		uploadService: uploadService,
	}
}

func (s *PortfolioServiceImpl) List(db *gorm.DB, providerID string) (*dto.PortfolioListResponse, error) {
	if _, err := s.providerRepo.FindByID(db, providerID); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	items, err := s.portfolioRepo.ListByProvider(db, providerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.PortfolioItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewPortfolioItemResponse(&items[i]))
	}
	return &dto.PortfolioListResponse{Items: out, Total: len(out)}, nil
}

// AddPhoto грузит фото в хранилище и вешает его в портфолио.
// Лимит по числу загрузок берется из фич текущего плана,
// 0 означает отсутствие лимита.
func (s *PortfolioServiceImpl) AddPhoto(ctx context.Context, db *gorm.DB, providerID string, file *multipart.FileHeader, featured bool) (*dto.PortfolioItemResponse, error) {
	provider, err := s.providerRepo.FindByID(db, providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if limit := provider.Plan.MaxPortfolioUploads(); limit > 0 {
		count, err := s.portfolioRepo.CountByProvider(db, providerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if count >= int64(limit) {
			return nil, apperrors.ErrPortfolioLimit.WithDetails(map[string]any{
				"limit": limit,
			})
		}
	}

	upload, err := s.uploadService.Upload(ctx, db, providerID, file, "portfolio", "portfolio_item", "")
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		ProviderID: providerID,
		Type:       models.PortfolioTypePhoto,
		Src:        upload.URL,
		Featured:   featured,
		UploadID:   &upload.ID,
	}
	if err := s.portfolioRepo.Create(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	item.Upload = upload
	return dto.NewPortfolioItemResponse(item), nil
}

// AddVideo добавляет видео ссылкой на YouTube, файл не загружается
func (s *PortfolioServiceImpl) AddVideo(db *gorm.DB, providerID string, req *dto.CreatePortfolioRequest) (*dto.PortfolioItemResponse, error) {
	if req.YoutubeURL == "" {
		return nil, apperrors.NewBadRequestError("youtube_url is required for video items")
	}

	if _, err := s.providerRepo.FindByID(db, providerID); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	item := &models.PortfolioItem{
		ProviderID: providerID,
		Type:       models.PortfolioTypeVideo,
		YoutubeURL: req.YoutubeURL,
		Featured:   req.Featured,
	}
	if err := s.portfolioRepo.Create(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPortfolioItemResponse(item), nil
}

func (s *PortfolioServiceImpl) Update(db *gorm.DB, providerID, itemID string, req *dto.UpdatePortfolioRequest) (*dto.PortfolioItemResponse, error) {
	item, err := s.findOwned(db, providerID, itemID)
	if err != nil {
		return nil, err
	}

	if req.YoutubeURL != nil {
		if item.Type != models.PortfolioTypeVideo {
			return nil, apperrors.NewBadRequestError("youtube_url can only be set on video items")
		}
		item.YoutubeURL = *req.YoutubeURL
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	if err := s.portfolioRepo.Update(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPortfolioItemResponse(item), nil
}

// Delete убирает элемент вместе с файлом в хранилище, если он был
func (s *PortfolioServiceImpl) Delete(ctx context.Context, db *gorm.DB, providerID, itemID string) error {
	item, err := s.findOwned(db, providerID, itemID)
	if err != nil {
		return err
	}

	if err := s.portfolioRepo.Delete(db, itemID); err != nil {
		return apperrors.InternalError(err)
	}

	if item.UploadID != nil {
		if err := s.uploadService.Delete(ctx, db, *item.UploadID); err != nil {
			return err
		}
	}
	return nil
}

func (s *PortfolioServiceImpl) findOwned(db *gorm.DB, providerID, itemID string) (*models.PortfolioItem, error) {
	item, err := s.portfolioRepo.FindByID(db, itemID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.NotFound("Portfolio item")
		}
		return nil, apperrors.InternalError(err)
	}
	if item.ProviderID != providerID {
		return nil, apperrors.NotFound("Portfolio item")
	}
	return item, nil
}
