package models

// PortfolioItem - элемент портфолио провайдера:
// photo (загруженный файл) или video (ссылка на YouTube)
type PortfolioItem struct {
	BaseModel
	ProviderID string        `gorm:"type:uuid;not null;index"`
	Type       PortfolioType `gorm:"type:varchar(10);not null"`
	Src        string
	YoutubeURL string
	Featured   bool    `gorm:"default:false"`
	UploadID   *string `gorm:"index"`

	// Relations
	Upload *Upload `gorm:"foreignKey:UploadID;constraint:OnDelete:SET NULL"`
}
