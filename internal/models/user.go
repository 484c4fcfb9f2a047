package models

import "time"

// Profile - один профиль на аутентифицированную личность.
// Роль фиксируется при регистрации и меняется только действием админа.
type Profile struct {
	BaseModel
	FullName          string     `gorm:"not null"`
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	Role              UserRole   `gorm:"type:varchar(20);not null"`
	Status            UserStatus `gorm:"type:varchar(20);default:'Active'"`
	AvatarURL         string
	IsVerified        bool `gorm:"default:false"`
	VerificationToken string

	// Relations
	Provider      *Provider      `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
