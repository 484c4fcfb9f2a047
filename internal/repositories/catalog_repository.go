package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrDuplicateLabel       = errors.New("catalog entry with this label already exists")
)

// CatalogRepository обслуживает обе справочные таблицы: services и event_types
type CatalogRepository interface {
	CreateService(db *gorm.DB, service *models.Service) error
	FindServiceByID(db *gorm.DB, id string) (*models.Service, error)
	ListServices(db *gorm.DB, onlyActive bool) ([]models.Service, error)
	UpdateServiceStatus(db *gorm.DB, id string, status models.CatalogStatus) error
	DeleteService(db *gorm.DB, id string) error
	ServiceProviderCounts(db *gorm.DB) (map[string]int64, error)

	CreateEventType(db *gorm.DB, eventType *models.EventType) error
	FindEventTypeByID(db *gorm.DB, id string) (*models.EventType, error)
	ListEventTypes(db *gorm.DB, onlyActive bool) ([]models.EventType, error)
	UpdateEventTypeStatus(db *gorm.DB, id string, status models.CatalogStatus) error
	DeleteEventType(db *gorm.DB, id string) error
	EventTypeProviderCounts(db *gorm.DB) (map[string]int64, error)
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

// --- Services ---

func (r *CatalogRepositoryImpl) CreateService(db *gorm.DB, service *models.Service) error {
	var existing models.Service
	err := db.Where("label = ? OR id = ?", service.Label, service.ID).First(&existing).Error
	if err == nil {
		return ErrDuplicateLabel
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(service).Error
}

func (r *CatalogRepositoryImpl) FindServiceByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *CatalogRepositoryImpl) ListServices(db *gorm.DB, onlyActive bool) ([]models.Service, error) {
	query := db.Model(&models.Service{})
	if onlyActive {
		query = query.Where("status = ?", models.CatalogStatusActive)
	}
	var services []models.Service
	err := query.Order("label ASC").Find(&services).Error
	return services, err
}

func (r *CatalogRepositoryImpl) UpdateServiceStatus(db *gorm.DB, id string, status models.CatalogStatus) error {
	result := db.Model(&models.Service{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

// DeleteService убирает запись каталога вместе со строками связей,
// чтобы выборка услуг провайдера не возвращала висячие id
func (r *CatalogRepositoryImpl) DeleteService(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProviderService{}, "service_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Service{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCatalogEntryNotFound
		}
		return nil
	})
}

func (r *CatalogRepositoryImpl) ServiceProviderCounts(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		ServiceID string
		Total     int64
	}
	var rows []row
	err := db.Model(&models.ProviderService{}).
		Select("service_id, count(*) as total").
		Group("service_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ServiceID] = r.Total
	}
	return counts, nil
}

// --- Event types ---

func (r *CatalogRepositoryImpl) CreateEventType(db *gorm.DB, eventType *models.EventType) error {
	var existing models.EventType
	err := db.Where("label = ? OR id = ?", eventType.Label, eventType.ID).First(&existing).Error
	if err == nil {
		return ErrDuplicateLabel
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(eventType).Error
}

func (r *CatalogRepositoryImpl) FindEventTypeByID(db *gorm.DB, id string) (*models.EventType, error) {
	var eventType models.EventType
	err := db.First(&eventType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return &eventType, nil
}

func (r *CatalogRepositoryImpl) ListEventTypes(db *gorm.DB, onlyActive bool) ([]models.EventType, error) {
	query := db.Model(&models.EventType{})
	if onlyActive {
		query = query.Where("status = ?", models.CatalogStatusActive)
	}
	var eventTypes []models.EventType
	err := query.Order("label ASC").Find(&eventTypes).Error
	return eventTypes, err
}

func (r *CatalogRepositoryImpl) UpdateEventTypeStatus(db *gorm.DB, id string, status models.CatalogStatus) error {
	result := db.Model(&models.EventType{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteEventType(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProviderEventType{}, "event_type_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.EventType{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCatalogEntryNotFound
		}
		return nil
	})
}

func (r *CatalogRepositoryImpl) EventTypeProviderCounts(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		EventTypeID string
		Total       int64
	}
	var rows []row
	err := db.Model(&models.ProviderEventType{}).
		Select("event_type_id, count(*) as total").
		Group("event_type_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.EventTypeID] = r.Total
	}
	return counts, nil
}
