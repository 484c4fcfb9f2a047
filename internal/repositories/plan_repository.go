package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	Create(db *gorm.DB, plan *models.Plan) error
	FindByID(db *gorm.DB, id string) (*models.Plan, error)
	List(db *gorm.DB, onlyActive bool) ([]models.Plan, error)
	Update(db *gorm.DB, plan *models.Plan) error
	Delete(db *gorm.DB, id string) error
	CountProviders(db *gorm.DB, planID string) (int64, error)
}

type PlanRepositoryImpl struct{}

func NewPlanRepository() PlanRepository {
	return &PlanRepositoryImpl{}
}

func (r *PlanRepositoryImpl) Create(db *gorm.DB, plan *models.Plan) error {
	return db.Create(plan).Error
}

func (r *PlanRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Plan, error) {
	var plan models.Plan
	err := db.First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) List(db *gorm.DB, onlyActive bool) ([]models.Plan, error) {
	query := db.Model(&models.Plan{})
	if onlyActive {
		query = query.Where("status = ?", models.PlanStatusActive)
	}
	var plans []models.Plan
	err := query.Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *PlanRepositoryImpl) Update(db *gorm.DB, plan *models.Plan) error {
	return db.Save(plan).Error
}

func (r *PlanRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Plan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepositoryImpl) CountProviders(db *gorm.DB, planID string) (int64, error) {
	var total int64
	err := db.Model(&models.Provider{}).Where("plan_id = ?", planID).Count(&total).Error
	return total, err
}
