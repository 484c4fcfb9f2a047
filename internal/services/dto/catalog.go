package dto

import "evently_backend/internal/models"

// ==========================
// Requests
// ==========================

type CreateCatalogEntryRequest struct {
	Label string `json:"label" validate:"required,min=2,max=80"`
}

type SetCatalogStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

// ==========================
// Responses
// ==========================

type CatalogEntryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CatalogAdminRow - строка админской таблицы со счетчиком провайдеров
type CatalogAdminRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Providers int64  `json:"providers"`
}

type CatalogListResponse struct {
	Entries []*CatalogEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

type CatalogAdminListResponse struct {
	Entries []*CatalogAdminRow `json:"entries"`
	Total   int                `json:"total"`
}

// NewServiceResponse маппит запись каталога услуг
func NewServiceResponse(s *models.Service) *CatalogEntryResponse {
	if s == nil {
		return nil
	}
	status := string(s.Status)
	if status == "" {
		status = string(models.CatalogStatusActive)
	}
	return &CatalogEntryResponse{ID: s.ID, Name: s.Label, Status: status}
}

// NewEventTypeResponse маппит запись каталога типов событий
func NewEventTypeResponse(e *models.EventType) *CatalogEntryResponse {
	if e == nil {
		return nil
	}
	status := string(e.Status)
	if status == "" {
		status = string(models.CatalogStatusActive)
	}
	return &CatalogEntryResponse{ID: e.ID, Name: e.Label, Status: status}
}

// NewServiceAdminRow добавляет счетчик провайдеров из агрегата join-таблицы
func NewServiceAdminRow(s *models.Service, providerCount int64) *CatalogAdminRow {
	resp := NewServiceResponse(s)
	if resp == nil {
		return nil
	}
	return &CatalogAdminRow{ID: resp.ID, Name: resp.Name, Status: resp.Status, Providers: providerCount}
}

// NewEventTypeAdminRow добавляет счетчик провайдеров из агрегата join-таблицы
func NewEventTypeAdminRow(e *models.EventType, providerCount int64) *CatalogAdminRow {
	resp := NewEventTypeResponse(e)
	if resp == nil {
		return nil
	}
	return &CatalogAdminRow{ID: resp.ID, Name: resp.Name, Status: resp.Status, Providers: providerCount}
}
