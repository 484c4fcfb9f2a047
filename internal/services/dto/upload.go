package dto

import (
	"time"

	"evently_backend/internal/models"
)

type UploadResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUploadResponse(u *models.Upload) *UploadResponse {
	if u == nil {
		return nil
	}
	return &UploadResponse{
		ID:           u.ID,
		URL:          u.URL,
		OriginalName: u.OriginalName,
		MimeType:     u.MimeType,
		Size:         u.Size,
		CreatedAt:    u.CreatedAt,
	}
}
