package services

import (
	"evently_backend/internal/email"
	"evently_backend/internal/logger"
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EnquiryService interface {
	// Публичная форма: userID непустой только для залогиненного клиента
	Create(db *gorm.DB, userID string, req *dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error)

	// Кабинет провайдера
	ListForProvider(db *gorm.DB, providerID string, criteria repositories.EnquirySearchCriteria) (*dto.EnquiryListResponse, error)
	GetForProvider(db *gorm.DB, providerID, enquiryID string) (*dto.EnquiryResponse, error)
	SetStatus(db *gorm.DB, providerID, enquiryID string, status models.EnquiryStatus) (*dto.EnquiryResponse, error)

	// Кабинет клиента
	ListForUser(db *gorm.DB, userID string) (*dto.EnquiryListResponse, error)
}

type EnquiryServiceImpl struct {
	enquiryRepo   repositories.EnquiryRepository
	providerRepo  repositories.ProviderRepository
	emailProvider email.Provider
}

func NewEnquiryService(
	enquiryRepo repositories.EnquiryRepository,
	providerRepo repositories.ProviderRepository,
	emailProvider email.Provider,
) EnquiryService {
	return &EnquiryServiceImpl{
		enquiryRepo:   enquiryRepo,
		providerRepo:  providerRepo,
		emailProvider: emailProvider,
	}
}

// Create принимает заявку только для активного провайдера.
// Уведомление на почту провайдера - best effort: сбой отправки
// логируется, но заявку не откатывает.
func (s *EnquiryServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error) {
	provider, err := s.providerRepo.FindByID(db, req.ProviderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if provider.Status != models.ProviderStatusActive {
		return nil, apperrors.ErrProviderNotActive
	}

	enquiry := &models.Enquiry{
		ProviderID:  req.ProviderID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Message:     req.Message,
		Status:      models.EnquiryStatusNew,
	}
	if userID != "" {
		enquiry.UserID = &userID
	}

	if err := s.enquiryRepo.Create(db, enquiry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyProvider(provider, enquiry)

	return dto.NewEnquiryResponse(enquiry), nil
}

func (s *EnquiryServiceImpl) ListForProvider(db *gorm.DB, providerID string, criteria repositories.EnquirySearchCriteria) (*dto.EnquiryListResponse, error) {
	enquiries, total, err := s.enquiryRepo.ListByProvider(db, providerID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.EnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		out = append(out, dto.NewEnquiryResponse(&enquiries[i]))
	}
	return &dto.EnquiryListResponse{Enquiries: out, Total: total}, nil
}

func (s *EnquiryServiceImpl) GetForProvider(db *gorm.DB, providerID, enquiryID string) (*dto.EnquiryResponse, error) {
	enquiry, err := s.findOwned(db, providerID, enquiryID)
	if err != nil {
		return nil, err
	}
	return dto.NewEnquiryResponse(enquiry), nil
}

// SetStatus меняет статус заявки в триаже провайдера.
// Любой валидный переход разрешен, включая откат назад.
func (s *EnquiryServiceImpl) SetStatus(db *gorm.DB, providerID, enquiryID string, status models.EnquiryStatus) (*dto.EnquiryResponse, error) {
	enquiry, err := s.findOwned(db, providerID, enquiryID)
	if err != nil {
		return nil, err
	}

	if !enquiry.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition.WithDetails(map[string]string{
			"from": string(enquiry.Status),
			"to":   string(status),
		})
	}

	if err := s.enquiryRepo.UpdateStatus(db, enquiryID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	enquiry.Status = status
	return dto.NewEnquiryResponse(enquiry), nil
}

func (s *EnquiryServiceImpl) ListForUser(db *gorm.DB, userID string) (*dto.EnquiryListResponse, error) {
	enquiries, err := s.enquiryRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.EnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		out = append(out, dto.NewEnquiryResponse(&enquiries[i]))
	}
	return &dto.EnquiryListResponse{Enquiries: out, Total: int64(len(out))}, nil
}

// Чужая заявка не раскрывается: и для несуществующего id, и для чужой
// записи наружу уходит один и тот же 404
func (s *EnquiryServiceImpl) findOwned(db *gorm.DB, providerID, enquiryID string) (*models.Enquiry, error) {
	enquiry, err := s.enquiryRepo.FindByID(db, enquiryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEnquiryNotFound) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if enquiry.ProviderID != providerID {
		return nil, apperrors.ErrEnquiryNotFound
	}
	return enquiry, nil
}

func (s *EnquiryServiceImpl) notifyProvider(provider *models.Provider, enquiry *models.Enquiry) {
	if s.emailProvider == nil || provider.Profile == nil || provider.Profile.Email == "" {
		return
	}

	msg := email.NewEnquiryNotification(
		provider.Profile.Email,
		provider.BusinessName,
		enquiry.ClientName,
		enquiry.EventType,
		enquiry.Message,
	)
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send enquiry notification",
			"provider_id", provider.ID, "enquiry_id", enquiry.ID)
	}
}
