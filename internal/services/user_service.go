package services

import (
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateMe(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)

	// Админские операции
	List(db *gorm.DB, criteria repositories.UserSearchCriteria) (*dto.UserListResponse, error)
	SetStatus(db *gorm.DB, adminID, targetID string, status models.UserStatus) error
	SetRole(db *gorm.DB, adminID, targetID string, role models.UserRole) error
	Delete(db *gorm.DB, adminID, targetID string) error
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	providerRepo     repositories.ProviderRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		providerRepo:     providerRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func (s *UserServiceImpl) GetMe(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(user), nil
}

func (s *UserServiceImpl) UpdateMe(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(user), nil
}

func (s *UserServiceImpl) List(db *gorm.DB, criteria repositories.UserSearchCriteria) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.List(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ProfileResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewProfileResponse(&users[i]))
	}
	return &dto.UserListResponse{Users: out, Total: total}, nil
}

// SetStatus меняет статус аккаунта. Бан и суспенд отзывают
// все refresh-токены, чтобы сессии умерли вместе со статусом.
func (s *UserServiceImpl) SetStatus(db *gorm.DB, adminID, targetID string, status models.UserStatus) error {
	if adminID == targetID {
		return apperrors.ErrCannotModifySelf
	}
	if !status.Valid() {
		return apperrors.NewBadRequestError("Unknown user status")
	}

	if err := s.userRepo.UpdateStatus(db, targetID, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if status != models.UserStatusActive {
		if err := s.refreshTokenRepo.DeleteByUser(db, targetID); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// SetRole меняет роль аккаунта. При повышении до provider
// заводится Pending-карточка, если её ещё нет.
func (s *UserServiceImpl) SetRole(db *gorm.DB, adminID, targetID string, role models.UserRole) error {
	if adminID == targetID {
		return apperrors.ErrCannotModifySelf
	}
	if !role.Valid() {
		return apperrors.ErrInvalidUserRole
	}

	user, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateRole(db, targetID, role); err != nil {
		return apperrors.InternalError(err)
	}

	if role == models.UserRoleProvider {
		provider := &models.Provider{
			ID:           user.ID,
			BusinessName: user.FullName,
			Status:       models.ProviderStatusPending,
			Currency:     "USD",
		}
		if err := s.providerRepo.Create(db, provider); err != nil &&
			!apperrors.Is(err, repositories.ErrProviderAlreadyExists) {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, adminID, targetID string) error {
	if adminID == targetID {
		return apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.Role == models.UserRoleProvider {
		if err := s.providerRepo.Delete(db, targetID); err != nil {
			return apperrors.InternalError(err)
		}
	}
	if err := s.refreshTokenRepo.DeleteByUser(db, targetID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Delete(db, targetID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
