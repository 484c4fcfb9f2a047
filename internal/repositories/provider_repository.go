package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProviderNotFound      = errors.New("provider not found")
	ErrProviderAlreadyExists = errors.New("provider already exists for this profile")
)

type ProviderSearchCriteria struct {
	Query       string                 `form:"query"`
	Location    string                 `form:"location"`
	ServiceID   string                 `form:"service"`
	EventTypeID string                 `form:"event_type"`
	Status      *models.ProviderStatus `form:"status"`
	Page        int                    `form:"page"`
	PageSize    int                    `form:"page_size"`
}

type ProviderRepository interface {
	Create(db *gorm.DB, provider *models.Provider) error
	FindByID(db *gorm.DB, id string) (*models.Provider, error)
	List(db *gorm.DB, criteria ProviderSearchCriteria) ([]models.Provider, int64, error)
	Update(db *gorm.DB, provider *models.Provider) error
	UpdateStatus(db *gorm.DB, id string, status models.ProviderStatus, isVerified bool) error
	SetPlan(db *gorm.DB, id string, planID string) error
	Delete(db *gorm.DB, id string) error

	// Ассоциации с каталогом
	ServiceIDs(db *gorm.DB, providerID string) ([]string, error)
	EventTypeIDs(db *gorm.DB, providerID string) ([]string, error)
	ReplaceServices(db *gorm.DB, providerID string, serviceIDs []string) error
	ReplaceEventTypes(db *gorm.DB, providerID string, eventTypeIDs []string) error
}

type ProviderRepositoryImpl struct{}

func NewProviderRepository() ProviderRepository {
	return &ProviderRepositoryImpl{}
}

func (r *ProviderRepositoryImpl) Create(db *gorm.DB, provider *models.Provider) error {
	var existing models.Provider
	if err := db.Where("id = ?", provider.ID).First(&existing).Error; err == nil {
		return ErrProviderAlreadyExists
	}
	return db.Create(provider).Error
}

func (r *ProviderRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Provider, error) {
	var provider models.Provider
	err := db.Preload("Profile").Preload("Plan").
		Preload("PortfolioItems").Preload("Packages").
		First(&provider, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) List(db *gorm.DB, criteria ProviderSearchCriteria) ([]models.Provider, int64, error) {
	query := db.Model(&models.Provider{})

	if criteria.Query != "" {
		query = query.Where("business_name ILIKE ?", "%"+criteria.Query+"%")
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Status != nil {
		query = query.Where("status = ?", *criteria.Status)
	}
	if criteria.ServiceID != "" {
		query = query.Where(
			"id IN (?)",
			db.Model(&models.ProviderService{}).Select("provider_id").Where("service_id = ?", criteria.ServiceID),
		)
	}
	if criteria.EventTypeID != "" {
		query = query.Where(
			"id IN (?)",
			db.Model(&models.ProviderEventType{}).Select("provider_id").Where("event_type_id = ?", criteria.EventTypeID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var providers []models.Provider
	err := query.Preload("Profile").Preload("Plan").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&providers).Error

	return providers, total, err
}

func (r *ProviderRepositoryImpl) Update(db *gorm.DB, provider *models.Provider) error {
	return db.Model(provider).Updates(map[string]interface{}{
		"business_name":       provider.BusinessName,
		"about":               provider.About,
		"location":            provider.Location,
		"banner_url":          provider.BannerURL,
		"image_url":           provider.ImageURL,
		"years_of_experience": provider.YearsOfExperience,
		"starting_price":      provider.StartingPrice,
		"currency":            provider.Currency,
		"social_media":        provider.SocialMedia,
	}).Error
}

// UpdateStatus пишет статус и is_verified одной командой,
// чтобы инвариант не разъезжался между двумя апдейтами
func (r *ProviderRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ProviderStatus, isVerified bool) error {
	result := db.Model(&models.Provider{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"is_verified": isVerified,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepositoryImpl) SetPlan(db *gorm.DB, id string, planID string) error {
	result := db.Model(&models.Provider{}).Where("id = ?", id).Update("plan_id", planID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

// Delete удаляет провайдера вместе со строками join-таблиц.
// Заявки, жалобы, портфолио и пакеты уходят каскадом по FK.
func (r *ProviderRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProviderService{}, "provider_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ProviderEventType{}, "provider_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Provider{}, "id = ?", id).Error
	})
}

func (r *ProviderRepositoryImpl) ServiceIDs(db *gorm.DB, providerID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.ProviderService{}).
		Where("provider_id = ?", providerID).
		Pluck("service_id", &ids).Error
	return ids, err
}

func (r *ProviderRepositoryImpl) EventTypeIDs(db *gorm.DB, providerID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.ProviderEventType{}).
		Where("provider_id = ?", providerID).
		Pluck("event_type_id", &ids).Error
	return ids, err
}

// ReplaceServices приводит связи провайдера к желаемому набору id.
// Вместо delete-all/insert-new считается дифф, и добавления/удаления
// идут точечно внутри одной транзакции.
func (r *ProviderRepositoryImpl) ReplaceServices(db *gorm.DB, providerID string, serviceIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		current, err := r.ServiceIDs(tx, providerID)
		if err != nil {
			return err
		}

		added, removed := DiffAssociations(current, serviceIDs)

		if len(removed) > 0 {
			if err := tx.Delete(&models.ProviderService{},
				"provider_id = ? AND service_id IN ?", providerID, removed).Error; err != nil {
				return err
			}
		}
		for _, id := range added {
			if err := tx.Create(&models.ProviderService{ProviderID: providerID, ServiceID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceEventTypes - то же самое для типов событий
func (r *ProviderRepositoryImpl) ReplaceEventTypes(db *gorm.DB, providerID string, eventTypeIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		current, err := r.EventTypeIDs(tx, providerID)
		if err != nil {
			return err
		}

		added, removed := DiffAssociations(current, eventTypeIDs)

		if len(removed) > 0 {
			if err := tx.Delete(&models.ProviderEventType{},
				"provider_id = ? AND event_type_id IN ?", providerID, removed).Error; err != nil {
				return err
			}
		}
		for _, id := range added {
			if err := tx.Create(&models.ProviderEventType{ProviderID: providerID, EventTypeID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DiffAssociations сравнивает текущий и желаемый наборы id
func DiffAssociations(current, desired []string) (added, removed []string) {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[string]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	for _, id := range desired {
		if !currentSet[id] {
			added = append(added, id)
		}
	}
	for _, id := range current {
		if !desiredSet[id] {
			removed = append(removed, id)
		}
	}
	return added, removed
}
