package models

import "time"

// Service - запись каталога услуг (photographer, dj, planner...).
// ID - слаг, производный от label.
type Service struct {
	ID        string        `gorm:"primaryKey"`
	Label     string        `gorm:"uniqueIndex;not null"`
	Status    CatalogStatus `gorm:"type:varchar(20);default:'Active'"`
	CreatedAt time.Time     `gorm:"default:now()"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime"`
}

// EventType - запись каталога типов событий (wedding, baby-shower...)
type EventType struct {
	ID        string        `gorm:"primaryKey"`
	Label     string        `gorm:"uniqueIndex;not null"`
	Status    CatalogStatus `gorm:"type:varchar(20);default:'Active'"`
	CreatedAt time.Time     `gorm:"default:now()"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime"`
}
