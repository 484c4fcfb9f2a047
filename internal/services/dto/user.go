package dto

import (
	"time"

	"evently_backend/internal/models"
)

// ==========================
// Requests
// ==========================

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type AdminSetUserStatusRequest struct {
	Status string `json:"status" validate:"required,is-user-status"`
}

type AdminSetUserRoleRequest struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

// ==========================
// Responses
// ==========================

type ProfileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []*ProfileResponse `json:"users"`
	Total int64              `json:"total"`
}

// NewProfileResponse маппит строку профиля в view-модель
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	status := string(p.Status)
	if status == "" {
		status = string(models.UserStatusActive)
	}

	return &ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		Role:      string(p.Role),
		Status:    status,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}
