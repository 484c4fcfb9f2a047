package services

import (
	"time"

	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderService interface {
	// Публичная витрина
	Get(db *gorm.DB, id string) (*dto.ProviderResponse, error)
	List(db *gorm.DB, criteria repositories.ProviderSearchCriteria) (*dto.ProviderListResponse, error)

	// Кабинет провайдера
	GetMine(db *gorm.DB, userID string) (*dto.ProviderResponse, error)
	UpdateMine(db *gorm.DB, userID string, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error)
	SelectPlan(db *gorm.DB, userID string, planID string) (*dto.MockPaymentResponse, error)
	Stats(db *gorm.DB, userID string) (*dto.ProviderStats, error)

	// Админские операции
	AdminList(db *gorm.DB, criteria repositories.ProviderSearchCriteria) (*dto.ProviderAdminListResponse, error)
	SetStatus(db *gorm.DB, id string, status models.ProviderStatus) error
	AdminDelete(db *gorm.DB, id string) error
}

type ProviderServiceImpl struct {
	providerRepo  repositories.ProviderRepository
	planRepo      repositories.PlanRepository
	enquiryRepo   repositories.EnquiryRepository
	portfolioRepo repositories.PortfolioRepository
}

func NewProviderService(
	providerRepo repositories.ProviderRepository,
	planRepo repositories.PlanRepository,
	enquiryRepo repositories.EnquiryRepository,
	portfolioRepo repositories.PortfolioRepository,
) ProviderService {
	return &ProviderServiceImpl{
		providerRepo:  providerRepo,
		planRepo:      planRepo,
		enquiryRepo:   enquiryRepo,
		portfolioRepo: portfolioRepo,
	}
}

func (s *ProviderServiceImpl) Get(db *gorm.DB, id string) (*dto.ProviderResponse, error) {
	provider, err := s.findProvider(db, id)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(db, provider)
}

// List - публичная витрина, отдает только активных провайдеров
// независимо от того, что пришло в критериях
func (s *ProviderServiceImpl) List(db *gorm.DB, criteria repositories.ProviderSearchCriteria) (*dto.ProviderListResponse, error) {
	active := models.ProviderStatusActive
	criteria.Status = &active

	providers, total, err := s.providerRepo.List(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ProviderResponse, 0, len(providers))
	for i := range providers {
		resp, err := s.buildResponse(db, &providers[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return &dto.ProviderListResponse{Providers: out, Total: total}, nil
}

func (s *ProviderServiceImpl) GetMine(db *gorm.DB, userID string) (*dto.ProviderResponse, error) {
	return s.Get(db, userID)
}

// UpdateMine обновляет карточку провайдера. Списки услуг и типов событий
// заменяются целиком: недостающие связи добавляются, лишние удаляются.
func (s *ProviderServiceImpl) UpdateMine(db *gorm.DB, userID string, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := s.findProvider(db, userID)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		provider.BusinessName = *req.BusinessName
	}
	if req.About != nil {
		provider.About = *req.About
	}
	if req.Location != nil {
		provider.Location = *req.Location
	}
	if req.BannerURL != nil {
		provider.BannerURL = *req.BannerURL
	}
	if req.ImageURL != nil {
		provider.ImageURL = *req.ImageURL
	}
	if req.YearsOfExperience != nil {
		provider.YearsOfExperience = *req.YearsOfExperience
	}
	if req.StartingPrice != nil {
		provider.StartingPrice = *req.StartingPrice
	}
	if req.Currency != nil {
		provider.Currency = *req.Currency
	}
	if req.SocialMedia != nil {
		provider.SetSocialMedia(req.SocialMedia)
	}

	if err := s.providerRepo.Update(db, provider); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Services != nil {
		if err := s.providerRepo.ReplaceServices(db, userID, req.Services); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if req.EventTypes != nil {
		if err := s.providerRepo.ReplaceEventTypes(db, userID, req.EventTypes); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(db, userID)
}

// SelectPlan назначает тариф провайдеру. Обработка платежей замокана:
// "оплата" всегда успешна, наружу уходит фиктивный payment_id.
func (s *ProviderServiceImpl) SelectPlan(db *gorm.DB, userID string, planID string) (*dto.MockPaymentResponse, error) {
	if _, err := s.findProvider(db, userID); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByID(db, planID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if plan.Status != models.PlanStatusActive {
		return nil, apperrors.ErrPlanInactive
	}

	if err := s.providerRepo.SetPlan(db, userID, planID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	currency := plan.Currency
	if currency == "" {
		currency = "USD"
	}
	return &dto.MockPaymentResponse{
		PaymentID: uuid.NewString(),
		PlanID:    plan.ID,
		Amount:    plan.Price,
		Currency:  currency,
		Status:    "paid",
	}, nil
}

// Stats - сводка дашборда: заявки по статусам, заявки за текущий
// календарный месяц против лимита плана, размер портфолио
func (s *ProviderServiceImpl) Stats(db *gorm.DB, userID string) (*dto.ProviderStats, error) {
	provider, err := s.findProvider(db, userID)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.enquiryRepo.CountsByStatus(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.enquiryRepo.CountByProviderSince(db, userID, monthStart)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	portfolioCount, err := s.portfolioRepo.CountByProvider(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	leadsPerMonth := 0
	if provider.Plan != nil {
		leadsPerMonth = provider.Plan.LeadsPerMonth
	}

	stats := &dto.ProviderStats{
		EnquiriesByStatus:  make(map[string]int64, len(byStatus)),
		EnquiriesThisMonth: thisMonth,
		LeadsPerMonth:      leadsPerMonth,
		PortfolioItems:     portfolioCount,
	}
	for status, count := range byStatus {
		stats.EnquiriesByStatus[string(status)] = count
	}
	return stats, nil
}

func (s *ProviderServiceImpl) AdminList(db *gorm.DB, criteria repositories.ProviderSearchCriteria) (*dto.ProviderAdminListResponse, error) {
	providers, total, err := s.providerRepo.List(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]*dto.ProviderAdminRow, 0, len(providers))
	for i := range providers {
		rows = append(rows, dto.NewProviderAdminRow(&providers[i]))
	}
	return &dto.ProviderAdminListResponse{Providers: rows, Total: total}, nil
}

// SetStatus проводит смену статуса через таблицу переходов.
// is_verified пересчитывается на каждой записи статуса: true
// только для Active.
func (s *ProviderServiceImpl) SetStatus(db *gorm.DB, id string, status models.ProviderStatus) error {
	provider, err := s.findProvider(db, id)
	if err != nil {
		return err
	}

	if !provider.Status.CanTransitionTo(status) {
		return apperrors.ErrInvalidTransition.WithDetails(map[string]string{
			"from": string(provider.Status),
			"to":   string(status),
		})
	}

	if err := s.providerRepo.UpdateStatus(db, id, status, status.IsVerifiedFor()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProviderServiceImpl) AdminDelete(db *gorm.DB, id string) error {
	if _, err := s.findProvider(db, id); err != nil {
		return err
	}
	if err := s.providerRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProviderServiceImpl) findProvider(db *gorm.DB, id string) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

func (s *ProviderServiceImpl) buildResponse(db *gorm.DB, provider *models.Provider) (*dto.ProviderResponse, error) {
	serviceIDs, err := s.providerRepo.ServiceIDs(db, provider.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	eventTypeIDs, err := s.providerRepo.EventTypeIDs(db, provider.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProviderResponse(provider, serviceIDs, eventTypeIDs), nil
}
