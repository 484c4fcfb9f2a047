package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"evently_backend/internal/auth"
	"evently_backend/internal/email"
	"evently_backend/internal/logger"
	"evently_backend/internal/models"
	"evently_backend/internal/repositories"
	"evently_backend/internal/services/dto"
	"evently_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// срок жизни refresh-токена
const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	VerifyEmail(db *gorm.DB, token string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	providerRepo     repositories.ProviderRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		providerRepo:     providerRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register - регистрация нового пользователя.
// Роль admin через публичную регистрацию не выдается.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role != models.UserRoleUser && role != models.UserRoleProvider {
		return nil, apperrors.ErrInvalidUserRole
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.Profile{
		FullName:          req.FullName,
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              role,
		Status:            models.UserStatusActive,
		IsVerified:        false,
		VerificationToken: generateRandomToken(),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Для провайдера сразу заводится карточка в статусе Pending,
	// на витрину она не попадает до одобрения админом
	if role == models.UserRoleProvider {
		businessName := req.BusinessName
		if businessName == "" {
			businessName = req.FullName
		}
		provider := &models.Provider{
			ID:           user.ID,
			BusinessName: businessName,
			Status:       models.ProviderStatusPending,
			Currency:     "USD",
		}
		if err := s.providerRepo.Create(db, provider); err != nil {
			s.userRepo.Delete(db, user.ID)
			return nil, apperrors.InternalError(err)
		}
	}

	s.sendVerificationEmail(user.Email, user.VerificationToken)

	return s.issueTokens(db, user)
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := checkUserStatus(user); err != nil {
		return nil, err
	}

	return s.issueTokens(db, user)
}

// Refresh - ротация refresh-токена: старый удаляется, выпускается новая пара
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.refreshTokenRepo.Find(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.Delete(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := checkUserStatus(user); err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.Delete(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Отдельного воркера нет, просроченные токены подчищаются при ротации
	if err := s.refreshTokenRepo.DeleteExpired(db); err != nil {
		logger.WithError(err).Warn("failed to prune expired refresh tokens")
	}

	return s.issueTokens(db, user)
}

// Logout - отзыв refresh-токена
func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.Delete(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyEmail - подтверждение почты по токену из письма
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.VerificationToken = ""

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(db *gorm.DB, user *models.Profile) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     generateRandomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.NewProfileResponse(user),
	}, nil
}

// Письмо не должно блокировать регистрацию: ошибка логируется и глотается
func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	if err := s.emailProvider.Send(email.NewVerificationEmail(to, token)); err != nil {
		logger.WithError(err).Warn("failed to send verification email", "to", to)
	}
}

func checkUserStatus(user *models.Profile) error {
	switch user.Status {
	case models.UserStatusBanned:
		return apperrors.ErrUserBanned
	case models.UserStatusSuspended:
		return apperrors.ErrUserSuspended
	}
	return nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
