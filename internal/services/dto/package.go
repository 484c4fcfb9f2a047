package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type CreatePackageRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	EventTypes  []string `json:"event_types" validate:"omitempty,dive,min=1"`
}

type UpdatePackageRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	IsActive    *bool    `json:"is_active,omitempty"`
	EventTypes  []string `json:"event_types,omitempty" validate:"omitempty,dive,min=1"`
}

// ==========================
// Responses
// ==========================

type PackageResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	EventTypes  []string  `json:"event_types"`
	CreatedAt   time.Time `json:"created_at"`
}

type PackageListResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Total    int                `json:"total"`
}

// NewPackageResponse маппит пакет услуг в view-модель
func NewPackageResponse(pkg *models.ProviderPackage) *PackageResponse {
	if pkg == nil {
		return nil
	}

	currency := pkg.Currency
	if currency == "" {
		currency = "USD"
	}

	eventTypes := pkg.GetEventTypes()
	if eventTypes == nil {
		eventTypes = []string{}
	}

	return &PackageResponse{
		ID:          pkg.ID,
		ProviderID:  pkg.ProviderID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		Currency:    currency,
		IsActive:    pkg.IsActive,
		EventTypes:  eventTypes,
		CreatedAt:   pkg.CreatedAt,
	}
}
