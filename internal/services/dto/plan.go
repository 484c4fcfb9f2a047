package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type CreatePlanRequest struct {
	Name          string         `json:"name" validate:"required,min=2"`
	Description   string         `json:"description" validate:"omitempty,max=2000"`
	Price         float64        `json:"price" validate:"min=0"`
	Currency      string         `json:"currency" validate:"omitempty,len=3"`
	BillingCycle  string         `json:"billing_cycle" validate:"omitempty,is-billing-cycle"`
	LeadsPerMonth int            `json:"leads_per_month" validate:"min=0"`
	IsFeatured    bool           `json:"is_featured"`
	Priority      string         `json:"priority" validate:"omitempty,is-plan-priority"`
	Features      map[string]any `json:"features"`
}

type UpdatePlanRequest struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=2"`
	Description   *string        `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price         *float64       `json:"price,omitempty" validate:"omitempty,min=0"`
	Currency      *string        `json:"currency,omitempty" validate:"omitempty,len=3"`
	BillingCycle  *string        `json:"billing_cycle,omitempty" validate:"omitempty,is-billing-cycle"`
	Status        *string        `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
	LeadsPerMonth *int           `json:"leads_per_month,omitempty" validate:"omitempty,min=0"`
	IsFeatured    *bool          `json:"is_featured,omitempty"`
	Priority      *string        `json:"priority,omitempty" validate:"omitempty,is-plan-priority"`
	Features      map[string]any `json:"features,omitempty"`
}

// ==========================
// Responses
// ==========================

type PlanResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price"`
	Currency      string         `json:"currency"`
	BillingCycle  string         `json:"billing_cycle"`
	Status        string         `json:"status"`
	LeadsPerMonth int            `json:"leads_per_month"`
	IsFeatured    bool           `json:"is_featured"`
	Priority      string         `json:"priority"`
	Features      map[string]any `json:"features,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type PlanListResponse struct {
	Plans []*PlanResponse `json:"plans"`
	Total int             `json:"total"`
}

// NewPlanResponse маппит план в view-модель с дефолтами
func NewPlanResponse(p *models.Plan) *PlanResponse {
	if p == nil {
		return nil
	}

	status := string(p.Status)
	if status == "" {
		status = string(models.PlanStatusActive)
	}
	priority := string(p.Priority)
	if priority == "" {
		priority = string(models.PlanPriorityNormal)
	}
	cycle := string(p.BillingCycle)
	if cycle == "" {
		cycle = string(models.BillingCycleMonthly)
	}

	return &PlanResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Currency:      p.Currency,
		BillingCycle:  cycle,
		Status:        status,
		LeadsPerMonth: p.LeadsPerMonth,
		IsFeatured:    p.IsFeatured,
		Priority:      priority,
		Features:      p.GetFeatures(),
		CreatedAt:     p.CreatedAt,
	}
}
