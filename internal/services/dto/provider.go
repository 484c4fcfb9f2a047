package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type UpdateProviderRequest struct {
	BusinessName      *string           `json:"business_name,omitempty" validate:"omitempty,min=2"`
	About             *string           `json:"about,omitempty" validate:"omitempty,max=4000"`
	Location          *string           `json:"location,omitempty"`
	BannerURL         *string           `json:"banner_url,omitempty" validate:"omitempty,url"`
	ImageURL          *string           `json:"image_url,omitempty" validate:"omitempty,url"`
	YearsOfExperience *int              `json:"years_of_experience,omitempty" validate:"omitempty,min=0,max=80"`
	StartingPrice     *float64          `json:"starting_price,omitempty" validate:"omitempty,min=0"`
	Currency          *string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	SocialMedia       map[string]string `json:"social_media,omitempty"`
	Services          []string          `json:"services,omitempty"`
	EventTypes        []string          `json:"event_types,omitempty"`
}

type SetProviderStatusRequest struct {
	Status string `json:"status" validate:"required,is-provider-status"`
}

type SelectPlanRequest struct {
	PlanID string `json:"plan_id" validate:"required,uuid"`
}

// ==========================
// Responses
// ==========================

type ProviderResponse struct {
	ID                string             `json:"id"`
	BusinessName      string             `json:"business_name"`
	About             string             `json:"about,omitempty"`
	Location          string             `json:"location,omitempty"`
	BannerURL         string             `json:"banner_url,omitempty"`
	ImageURL          string             `json:"image_url,omitempty"`
	YearsOfExperience int                `json:"years_of_experience"`
	StartingPrice     float64            `json:"starting_price"`
	Currency          string             `json:"currency"`
	Status            string             `json:"status"`
	IsVerified        bool               `json:"is_verified"`
	Plan              string             `json:"plan"`
	SocialMedia       map[string]string  `json:"social_media,omitempty"`
	Services          []string           `json:"services"`
	EventTypes        []string           `json:"event_types"`
	Packages          []*PackageResponse `json:"packages,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// ProviderAdminRow - плоская строка для админской таблицы провайдеров
type ProviderAdminRow struct {
	ID             string `json:"id"`
	BusinessName   string `json:"business_name"`
	Representative string `json:"representative"`
	Email          string `json:"email"`
	Plan           string `json:"plan"`
	Status         string `json:"status"`
	IsVerified     bool   `json:"is_verified"`
}

type ProviderListResponse struct {
	Providers []*ProviderResponse `json:"providers"`
	Total     int64               `json:"total"`
}

type ProviderAdminListResponse struct {
	Providers []*ProviderAdminRow `json:"providers"`
	Total     int64               `json:"total"`
}

// ProviderStats - сводка дашборда провайдера
type ProviderStats struct {
	EnquiriesByStatus  map[string]int64 `json:"enquiries_by_status"`
	EnquiriesThisMonth int64            `json:"enquiries_this_month"`
	LeadsPerMonth      int              `json:"leads_per_month"`
	PortfolioItems     int64            `json:"portfolio_items"`
}

// MockPaymentResponse - заглушка оплаты при выборе плана
type MockPaymentResponse struct {
	PaymentID string  `json:"payment_id"`
	PlanID    string  `json:"plan_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"` // всегда "paid" - обработка платежей замокана
}

// NewProviderResponse маппит провайдера с join'ами в view-модель.
// Недостающие поля закрываются литералами, как на витрине.
func NewProviderResponse(p *models.Provider, serviceIDs, eventTypeIDs []string) *ProviderResponse {
	if p == nil {
		return nil
	}

	planName := "Free"
	if p.Plan != nil {
		planName = p.Plan.Name
	}

	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	if eventTypeIDs == nil {
		eventTypeIDs = []string{}
	}

	packages := make([]*PackageResponse, 0, len(p.Packages))
	for i := range p.Packages {
		packages = append(packages, NewPackageResponse(&p.Packages[i]))
	}

	return &ProviderResponse{
		ID:                p.ID,
		BusinessName:      p.BusinessName,
		About:             p.About,
		Location:          p.Location,
		BannerURL:         p.BannerURL,
		ImageURL:          p.ImageURL,
		YearsOfExperience: p.YearsOfExperience,
		StartingPrice:     p.StartingPrice,
		Currency:          p.Currency,
		Status:            string(p.Status),
		IsVerified:        p.IsVerified,
		Plan:              planName,
		SocialMedia:       p.GetSocialMedia(),
		Services:          serviceIDs,
		EventTypes:        eventTypeIDs,
		Packages:          packages,
		CreatedAt:         p.CreatedAt,
	}
}

// NewProviderAdminRow маппит провайдера в строку админской таблицы
func NewProviderAdminRow(p *models.Provider) *ProviderAdminRow {
	if p == nil {
		return nil
	}

	representative := "Unknown"
	email := "Unknown"
	if p.Profile != nil {
		representative = p.Profile.FullName
		email = p.Profile.Email
	}

	planName := "Free"
	if p.Plan != nil {
		planName = p.Plan.Name
	}

	return &ProviderAdminRow{
		ID:             p.ID,
		BusinessName:   p.BusinessName,
		Representative: representative,
		Email:          email,
		Plan:           planName,
		Status:         string(p.Status),
		IsVerified:     p.IsVerified,
	}
}
