package repositories

import (
	"errors"

	"evently_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserSearchCriteria struct {
	Query    string             `form:"query"`
	Role     *models.UserRole   `form:"role"`
	Status   *models.UserStatus `form:"status"`
	Page     int                `form:"page"`
	PageSize int                `form:"page_size"`
}

type UserRepository interface {
	Create(db *gorm.DB, user *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindByEmail(db *gorm.DB, email string) (*models.Profile, error)
	FindByVerificationToken(db *gorm.DB, token string) (*models.Profile, error)
	List(db *gorm.DB, criteria UserSearchCriteria) ([]models.Profile, int64, error)
	Update(db *gorm.DB, user *models.Profile) error
	UpdateStatus(db *gorm.DB, id string, status models.UserStatus) error
	UpdateRole(db *gorm.DB, id string, role models.UserRole) error
	Delete(db *gorm.DB, id string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.Profile) error {
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var user models.Profile
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	var user models.Profile
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByVerificationToken(db *gorm.DB, token string) (*models.Profile, error) {
	var user models.Profile
	err := db.Where("verification_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) List(db *gorm.DB, criteria UserSearchCriteria) ([]models.Profile, int64, error) {
	query := db.Model(&models.Profile{})

	if criteria.Query != "" {
		like := "%" + criteria.Query + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if criteria.Role != nil {
		query = query.Where("role = ?", *criteria.Role)
	}
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

	var users []models.Profile
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error

	return users, total, err
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.Profile) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.UserStatus) error {
	result := db.Model(&models.Profile{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateRole(db *gorm.DB, id string, role models.UserRole) error {
	result := db.Model(&models.Profile{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Profile{}, "id = ?", id).Error
}
