package repositories

import (
	"errors"
	"time"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

type EnquirySearchCriteria struct {
	Status   *models.EnquiryStatus `form:"status"`
	Page     int                   `form:"page"`
	PageSize int                   `form:"page_size"`
}

type EnquiryRepository interface {
	Create(db *gorm.DB, enquiry *models.Enquiry) error
	FindByID(db *gorm.DB, id string) (*models.Enquiry, error)
	ListByProvider(db *gorm.DB, providerID string, criteria EnquirySearchCriteria) ([]models.Enquiry, int64, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Enquiry, error)
	UpdateStatus(db *gorm.DB, id string, status models.EnquiryStatus) error
	Delete(db *gorm.DB, id string) error
	CountByProviderSince(db *gorm.DB, providerID string, since time.Time) (int64, error)
	CountsByStatus(db *gorm.DB, providerID string) (map[models.EnquiryStatus]int64, error)
}

type EnquiryRepositoryImpl struct{}

func NewEnquiryRepository() EnquiryRepository {
	return &EnquiryRepositoryImpl{}
}

func (r *EnquiryRepositoryImpl) Create(db *gorm.DB, enquiry *models.Enquiry) error {
	return db.Create(enquiry).Error
}

func (r *EnquiryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := db.First(&enquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepositoryImpl) ListByProvider(db *gorm.DB, providerID string, criteria EnquirySearchCriteria) ([]models.Enquiry, int64, error) {
	query := db.Model(&models.Enquiry{}).Where("provider_id = ?", providerID)
	if criteria.Status != nil {
		query = query.Where("status = ?", *criteria.Status)
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

	var enquiries []models.Enquiry
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&enquiries).Error

	return enquiries, total, err
}

func (r *EnquiryRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := db.Preload("Provider").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&enquiries).Error
	return enquiries, err
}

func (r *EnquiryRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.EnquiryStatus) error {
	result := db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}

func (r *EnquiryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Enquiry{}, "id = ?", id).Error
}

// CountByProviderSince считает заявки с момента since - лимит лидов по плану
func (r *EnquiryRepositoryImpl) CountByProviderSince(db *gorm.DB, providerID string, since time.Time) (int64, error) {
	var total int64
	err := db.Model(&models.Enquiry{}).
		Where("provider_id = ? AND created_at >= ?", providerID, since).
		Count(&total).Error
	return total, err
}

func (r *EnquiryRepositoryImpl) CountsByStatus(db *gorm.DB, providerID string) (map[models.EnquiryStatus]int64, error) {
	type row struct {
		Status models.EnquiryStatus
		Total  int64
	}
	var rows []row
	err := db.Model(&models.Enquiry{}).
		Select("status, count(*) as total").
		Where("provider_id = ?", providerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.EnquiryStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
