package helpers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"evently_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает профиль в транзакции с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.Profile) error {
	// Хешируем только сырые пароли
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	// По умолчанию - активный и верифицированный
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает профиль и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, fullName, email, password string, role models.UserRole) (string, *models.Profile) {
	user := &models.Profile{
		FullName:     fullName,
		Email:        email,
		PasswordHash: password, // Сырой пароль
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	log.Printf("✅ [Helper] Создан и залогинен пользователь %s (Role: %s)", email, role)

	// Восстанавливаем сырой пароль в объекте (для удобства в тестах)
	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginClient создает обычного пользователя с уникальным email
func CreateAndLoginClient(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile) {
	email := fmt.Sprintf("client_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Client", email, "password123", models.UserRoleUser)
}

// CreateAndLoginAdmin создает админа с уникальным email
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateAndLoginProvider создает активного провайдера с уникальным email
func CreateAndLoginProvider(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile, *models.Provider) {
	email := fmt.Sprintf("provider_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, "Test Provider", email, "password123", models.UserRoleProvider)

	// Профиль провайдера делит id со строкой profiles
	provider := &models.Provider{
		ID:           user.ID,
		BusinessName: "Test Events Co.",
		About:        "Full-service event provider",
		Location:     "Austin, TX",
		Status:       models.ProviderStatusActive,
		IsVerified:   true,
	}
	result := tx.Create(provider)
	assert.NoError(t, result.Error, "Не удалось создать профиль провайдера")

	log.Printf("✅ [Helper] Создан профиль провайдера для %s", email)
	return token, user, provider
}

// CreatePendingProvider создает провайдера в статусе Pending (не виден публично)
func CreatePendingProvider(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.Profile, *models.Provider) {
	email := fmt.Sprintf("pending_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, "Pending Provider", email, "password123", models.UserRoleProvider)

	provider := &models.Provider{
		ID:           user.ID,
		BusinessName: "Pending Events Co.",
		Status:       models.ProviderStatusPending,
		IsVerified:   false,
	}
	result := tx.Create(provider)
	assert.NoError(t, result.Error, "Не удалось создать профиль провайдера")

	return token, user, provider
}
