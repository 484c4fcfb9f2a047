package models

type Upload struct {
	BaseModel
	UserID          string `gorm:"type:uuid;not null;index"`
	EntityType      string // "provider", "portfolio_item", "report"
	EntityID        string
	Usage           string // "avatar", "banner", "portfolio", "report_attachment"
	Path            string `gorm:"not null"`
	URL             string
	OriginalName    string
	MimeType        string
	Size            int64
	IsPublic        bool   `gorm:"default:true"`
	StorageProvider string `gorm:"default:'local'"` // 'local', 's3', 'cloudflare_r2'
}
