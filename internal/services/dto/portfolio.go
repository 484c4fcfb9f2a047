package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

// CreatePortfolioRequest привязывается из multipart-формы (photo)
// или JSON (video), поэтому и form-, и json-теги
type CreatePortfolioRequest struct {
	Type       string `form:"type" json:"type" validate:"required,is-portfolio-type"`
	YoutubeURL string `form:"youtube_url" json:"youtube_url" validate:"omitempty,url"`
	Featured   bool   `form:"featured" json:"featured"`
}

type UpdatePortfolioRequest struct {
	YoutubeURL *string `json:"youtube_url,omitempty" validate:"omitempty,url"`
	Featured   *bool   `json:"featured,omitempty"`
}

// ==========================
// Responses
// ==========================

type PortfolioItemResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Type       string    `json:"type"`
	Src        string    `json:"src,omitempty"`
	YoutubeURL string    `json:"youtube_url,omitempty"`
	Featured   bool      `json:"featured"`
	CreatedAt  time.Time `json:"created_at"`
}

type PortfolioListResponse struct {
	Items []*PortfolioItemResponse `json:"items"`
	Total int                      `json:"total"`
}

// NewPortfolioItemResponse маппит элемент портфолио в view-модель
func NewPortfolioItemResponse(item *models.PortfolioItem) *PortfolioItemResponse {
	if item == nil {
		return nil
	}

	src := item.Src
	if src == "" && item.Upload != nil {
		src = item.Upload.URL
	}

	return &PortfolioItemResponse{
		ID:         item.ID,
		ProviderID: item.ProviderID,
		Type:       string(item.Type),
		Src:        src,
		YoutubeURL: item.YoutubeURL,
		Featured:   item.Featured,
		CreatedAt:  item.CreatedAt,
	}
}
