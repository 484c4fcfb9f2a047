package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

type ReportSearchCriteria struct {
	Status   *models.ReportStatus `form:"status"`
	Page     int                  `form:"page"`
	PageSize int                  `form:"page_size"`
}

type ReportRepository interface {
	Create(db *gorm.DB, report *models.Report) error
	FindByID(db *gorm.DB, id string) (*models.Report, error)
	List(db *gorm.DB, criteria ReportSearchCriteria) ([]models.Report, int64, error)
	Update(db *gorm.DB, report *models.Report) error
	Delete(db *gorm.DB, id string) error
}

type ReportRepositoryImpl struct{}

func NewReportRepository() ReportRepository {
	return &ReportRepositoryImpl{}
}

func (r *ReportRepositoryImpl) Create(db *gorm.DB, report *models.Report) error {
	return db.Create(report).Error
}

func (r *ReportRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Report, error) {
	var report models.Report
	err := db.Preload("Reporter").Preload("Provider").
		First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) List(db *gorm.DB, criteria ReportSearchCriteria) ([]models.Report, int64, error) {
	query := db.Model(&models.Report{})
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

	var reports []models.Report
	err := query.Preload("Reporter").Preload("Provider").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&reports).Error

	return reports, total, err
}

func (r *ReportRepositoryImpl) Update(db *gorm.DB, report *models.Report) error {
	return db.Model(report).Updates(map[string]interface{}{
		"status":      report.Status,
		"admin_notes": report.AdminNotes,
	}).Error
}

func (r *ReportRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Report{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
