package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type CreateEnquiryRequest struct {
	ProviderID  string     `json:"provider_id" validate:"required,uuid"`
	ClientName  string     `json:"client_name" validate:"required,min=2"`
	ClientEmail string     `json:"client_email" validate:"required,email"`
	EventType   string     `json:"event_type" validate:"omitempty,max=80"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Message     string     `json:"message" validate:"omitempty,max=4000"`
}

type SetEnquiryStatusRequest struct {
	Status string `json:"status" validate:"required,is-enquiry-status"`
}

// ==========================
// Responses
// ==========================

type EnquiryResponse struct {
	ID          string     `json:"id"`
	ProviderID  string     `json:"provider_id"`
	Provider    string     `json:"provider,omitempty"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	EventType   string     `json:"event_type,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Message     string     `json:"message,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type EnquiryListResponse struct {
	Enquiries []*EnquiryResponse `json:"enquiries"`
	Total     int64              `json:"total"`
}

// NewEnquiryResponse маппит заявку в view-модель
func NewEnquiryResponse(e *models.Enquiry) *EnquiryResponse {
	if e == nil {
		return nil
	}

	status := string(e.Status)
	if status == "" {
		status = string(models.EnquiryStatusNew)
	}

	providerName := ""
	if e.Provider != nil {
		providerName = e.Provider.BusinessName
	}

	return &EnquiryResponse{
		ID:          e.ID,
		ProviderID:  e.ProviderID,
		Provider:    providerName,
		ClientName:  e.ClientName,
		ClientEmail: e.ClientEmail,
		EventType:   e.EventType,
		EventDate:   e.EventDate,
		Message:     e.Message,
		Status:      status,
		CreatedAt:   e.CreatedAt,
	}
}
