package models

import "time"

// Enquiry - контактная заявка клиента конкретному провайдеру.
// UserID nullable: заявку может оставить и незалогиненный посетитель.
type Enquiry struct {
	BaseModel
	ProviderID  string        `gorm:"type:uuid;not null;index"`
	UserID      *string       `gorm:"type:uuid;index"`
	ClientName  string        `gorm:"not null"`
	ClientEmail string        `gorm:"not null"`
	EventType   string
	EventDate   *time.Time
	Message     string
	Status      EnquiryStatus `gorm:"type:varchar(20);default:'new'"`

	// Relations
	Provider *Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}
