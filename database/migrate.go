package database

import (
	"fmt"

	"evently_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает GORM-подключение к Postgres
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate прогоняет автомиграцию всех моделей.
// Расширение uuid-ossp нужно для default uuid_generate_v4().
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	return db.AutoMigrate(
		&models.Profile{},
		&models.RefreshToken{},
		&models.Plan{},
		&models.Provider{},
		&models.Service{},
		&models.EventType{},
		&models.ProviderService{},
		&models.ProviderEventType{},
		&models.Enquiry{},
		&models.Report{},
		&models.Upload{},
		&models.PortfolioItem{},
		&models.ProviderPackage{},
	)
}
