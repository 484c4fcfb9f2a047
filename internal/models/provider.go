package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Provider - публичный профиль поставщика услуг, 1:1 с Profile (общий id).
type Provider struct {
	ID                string         `gorm:"type:uuid;primaryKey"`
	BusinessName      string         `gorm:"not null"`
	About             string
	Location          string
	BannerURL         string
	ImageURL          string
	YearsOfExperience int            `gorm:"default:0"`
	StartingPrice     float64        `gorm:"default:0"`
	Currency          string         `gorm:"default:'USD'"`
	Status            ProviderStatus `gorm:"type:varchar(20);default:'Pending'"`
	IsVerified        bool           `gorm:"default:false"`
	PlanID            *string        `gorm:"index"`
	SocialMedia       datatypes.JSON `gorm:"type:jsonb"` // {"instagram": "...", "facebook": "..."}
	CreatedAt         time.Time      `gorm:"default:now()"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`

	// Relations. Дочерние строки каскадно удаляются вместе с провайдером.
	Profile        *Profile          `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
	Plan           *Plan             `gorm:"foreignKey:PlanID"`
	PortfolioItems []PortfolioItem   `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	Packages       []ProviderPackage `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// GetSocialMedia возвращает соцсети провайдера как map
func (p *Provider) GetSocialMedia() map[string]string {
	out := map[string]string{}
	if len(p.SocialMedia) > 0 {
		_ = json.Unmarshal(p.SocialMedia, &out)
	}
	return out
}

// SetSocialMedia устанавливает соцсети провайдера
func (p *Provider) SetSocialMedia(links map[string]string) {
	data, _ := json.Marshal(links)
	p.SocialMedia = datatypes.JSON(data)
}

// ProviderService - связь провайдера с услугой каталога.
// Строки пересчитываются diff-and-patch'ем при сохранении профиля.
type ProviderService struct {
	ProviderID string `gorm:"type:uuid;primaryKey"`
	ServiceID  string `gorm:"primaryKey"`
}

// ProviderEventType - связь провайдера с типом события
type ProviderEventType struct {
	ProviderID  string `gorm:"type:uuid;primaryKey"`
	EventTypeID string `gorm:"primaryKey"`
}
