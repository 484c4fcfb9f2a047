package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Report - жалоба пользователя на провайдера, разбирается админом
type Report struct {
	BaseModel
	ReporterID  string         `gorm:"type:uuid;not null;index"`
	ProviderID  string         `gorm:"type:uuid;not null;index"`
	ReportType  string         `gorm:"not null"`
	Message     string
	Attachments datatypes.JSON `gorm:"type:jsonb"` // список URL
	Status      ReportStatus   `gorm:"type:varchar(20);default:'pending'"`
	AdminNotes  string

	// Relations. Жалобы не переживают ни автора, ни провайдера.
	Reporter *Profile  `gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE"`
	Provider *Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// GetAttachments возвращает вложения жалобы как slice строк
func (r *Report) GetAttachments() []string {
	var urls []string
	if len(r.Attachments) > 0 {
		_ = json.Unmarshal(r.Attachments, &urls)
	}
	return urls
}

// SetAttachments устанавливает вложения жалобы
func (r *Report) SetAttachments(urls []string) {
	data, _ := json.Marshal(urls)
	r.Attachments = datatypes.JSON(data)
}
