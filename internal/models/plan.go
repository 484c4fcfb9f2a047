package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Plan - тариф подписки провайдера.
// Features - свободная карта: discount_price, trial_period,
// max_portfolio_uploads, services_allowed, event_types_allowed,
// analytics_access, priority_support, custom_badge, show_in_recommendations.
type Plan struct {
	BaseModel
	Name          string         `gorm:"not null"`
	Description   string
	Price         float64        `gorm:"not null"`
	Currency      string         `gorm:"default:'USD'"`
	BillingCycle  BillingCycle   `gorm:"type:varchar(20);default:'Monthly'"`
	Status        PlanStatus     `gorm:"type:varchar(20);default:'Active'"`
	LeadsPerMonth int            `gorm:"default:0"`
	IsFeatured    bool           `gorm:"default:false"`
	Priority      PlanPriority   `gorm:"type:varchar(20);default:'Normal'"`
	Features      datatypes.JSON `gorm:"type:jsonb"`
}

// GetFeatures возвращает карту фич плана
func (p *Plan) GetFeatures() map[string]any {
	out := map[string]any{}
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &out)
	}
	return out
}

// SetFeatures устанавливает карту фич плана
func (p *Plan) SetFeatures(features map[string]any) {
	data, _ := json.Marshal(features)
	p.Features = datatypes.JSON(data)
}

// MaxPortfolioUploads читает лимит портфолио из фич плана.
// 0 означает "без лимита" (или план не задан).
func (p *Plan) MaxPortfolioUploads() int {
	if p == nil {
		return 0
	}
	if v, ok := p.GetFeatures()["max_portfolio_uploads"]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return 0
}
