package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ProviderPackage - пакет услуг провайдера с фиксированной ценой
type ProviderPackage struct {
	BaseModel
	ProviderID  string         `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"not null"`
	Description string
	Price       float64        `gorm:"not null"`
	Currency    string         `gorm:"default:'USD'"`
	IsActive    bool           `gorm:"default:true"`
	EventTypes  datatypes.JSON `gorm:"type:jsonb"` // ["wedding", "birthday-party"]
}

// GetEventTypes возвращает типы событий пакета как slice строк
func (p *ProviderPackage) GetEventTypes() []string {
	var types []string
	if len(p.EventTypes) > 0 {
		_ = json.Unmarshal(p.EventTypes, &types)
	}
	return types
}

// SetEventTypes устанавливает типы событий пакета
func (p *ProviderPackage) SetEventTypes(types []string) {
	data, _ := json.Marshal(types)
	p.EventTypes = datatypes.JSON(data)
}
