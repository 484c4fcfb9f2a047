package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type CreateReportRequest struct {
	ProviderID  string   `json:"provider_id" validate:"required,uuid"`
	ReportType  string   `json:"report_type" validate:"required,max=80"`
	Message     string   `json:"message" validate:"required,max=4000"`
	Attachments []string `json:"attachments" validate:"omitempty,dive,url"`
}

type UpdateReportRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,is-report-status"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=4000"`
}

// ==========================
// Responses
// ==========================

type ReportResponse struct {
	ID          string    `json:"id"`
	Reporter    string    `json:"reporter"`
	Provider    string    `json:"provider"`
	ProviderID  string    `json:"provider_id"`
	ReportType  string    `json:"report_type"`
	Message     string    `json:"message,omitempty"`
	Attachments []string  `json:"attachments"`
	Status      string    `json:"status"`
	AdminNotes  string    `json:"admin_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReportListResponse struct {
	Reports []*ReportResponse `json:"reports"`
	Total   int64             `json:"total"`
}

// NewReportResponse маппит жалобу с join'ами в view-модель
func NewReportResponse(r *models.Report) *ReportResponse {
	if r == nil {
		return nil
	}

	reporter := "Unknown"
	if r.Reporter != nil {
		reporter = r.Reporter.FullName
	}
	provider := "Unknown"
	if r.Provider != nil {
		provider = r.Provider.BusinessName
	}

	status := string(r.Status)
	if status == "" {
		status = string(models.ReportStatusPending)
	}

	attachments := r.GetAttachments()
	if attachments == nil {
		attachments = []string{}
	}

	return &ReportResponse{
		ID:          r.ID,
		Reporter:    reporter,
		Provider:    provider,
		ProviderID:  r.ProviderID,
		ReportType:  r.ReportType,
		Message:     r.Message,
		Attachments: attachments,
		Status:      status,
		AdminNotes:  r.AdminNotes,
		CreatedAt:   r.CreatedAt,
	}
}
