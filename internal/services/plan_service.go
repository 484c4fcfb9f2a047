package services

import (
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PlanService interface {
	Get(db *gorm.DB, id string) (*dto.PlanResponse, error)
	List(db *gorm.DB) (*dto.PlanListResponse, error)

	// Админские операции
	AdminList(db *gorm.DB) (*dto.PlanListResponse, error)
	Create(db *gorm.DB, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	Update(db *gorm.DB, id string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	Delete(db *gorm.DB, id string) error
}

type PlanServiceImpl struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanService {
	return &PlanServiceImpl{planRepo: planRepo}
}

func (s *PlanServiceImpl) Get(db *gorm.DB, id string) (*dto.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPlanResponse(plan), nil
}

// List - публичный прайсинг, только активные тарифы
func (s *PlanServiceImpl) List(db *gorm.DB) (*dto.PlanListResponse, error) {
	return s.list(db, true)
}

func (s *PlanServiceImpl) AdminList(db *gorm.DB) (*dto.PlanListResponse, error) {
	return s.list(db, false)
}

func (s *PlanServiceImpl) list(db *gorm.DB, onlyActive bool) (*dto.PlanListResponse, error) {
	plans, err := s.planRepo.List(db, onlyActive)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, dto.NewPlanResponse(&plans[i]))
	}
	return &dto.PlanListResponse{Plans: out, Total: len(out)}, nil
}

func (s *PlanServiceImpl) Create(db *gorm.DB, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	plan := &models.Plan{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Currency:      req.Currency,
		BillingCycle:  models.BillingCycle(req.BillingCycle),
		Status:        models.PlanStatusActive,
		LeadsPerMonth: req.LeadsPerMonth,
		IsFeatured:    req.IsFeatured,
		Priority:      models.PlanPriority(req.Priority),
	}

	if plan.Currency == "" {
		plan.Currency = "USD"
	}
	if plan.BillingCycle == "" {
		plan.BillingCycle = models.BillingCycleMonthly
	}
	if plan.Priority == "" {
		plan.Priority = models.PlanPriorityNormal
	}
	if req.Features != nil {
		plan.SetFeatures(req.Features)
	}

	if err := s.planRepo.Create(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPlanResponse(plan), nil
}

func (s *PlanServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Currency != nil {
		plan.Currency = *req.Currency
	}
	if req.BillingCycle != nil {
		plan.BillingCycle = models.BillingCycle(*req.BillingCycle)
	}
	if req.Status != nil {
		plan.Status = models.PlanStatus(*req.Status)
	}
	if req.LeadsPerMonth != nil {
		plan.LeadsPerMonth = *req.LeadsPerMonth
	}
	if req.IsFeatured != nil {
		plan.IsFeatured = *req.IsFeatured
	}
	if req.Priority != nil {
		plan.Priority = models.PlanPriority(*req.Priority)
	}
	if req.Features != nil {
		plan.SetFeatures(req.Features)
	}

	if err := s.planRepo.Update(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPlanResponse(plan), nil
}

// Delete запрещает удаление тарифа с подписанными провайдерами:
// сначала нужно перевести их на другой план или деактивировать тариф
func (s *PlanServiceImpl) Delete(db *gorm.DB, id string) error {
	if _, err := s.planRepo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.InternalError(err)
	}

	assigned, err := s.planRepo.CountProviders(db, id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if assigned > 0 {
		return apperrors.NewConflictError("Plan is assigned to providers and cannot be deleted")
	}

	if err := s.planRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
