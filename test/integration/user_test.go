package integration_test

import (
	"net/http"
	"testing"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestGetMe - профиль текущего пользователя
func TestGetMe(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.FullName)
	t.Logf("ПРОФИЛЬ: Успешно. Ответ: %s", bodyStr)
}

// TestGetMe_NoToken - без токена отдается 401
func TestGetMe_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, nil, "GET", "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestUpdateMe - редактирование своего профиля
func TestUpdateMe(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/users/me", token, map[string]interface{}{
		"full_name":  "Renamed Client",
		"avatar_url": "https://cdn.example.com/avatar.png",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Renamed Client")

	var updated models.Profile
	assert.NoError(t, tx.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "Renamed Client", updated.FullName)
}

// TestAdminListUsers - админ фильтрует пользователей по роли
func TestAdminListUsers(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	_, providerUser, _ := helpers.CreateAndLoginProvider(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/admin/users?role=provider", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, providerUser.Email)
	assert.NotContains(t, bodyStr, client.Email)
}

// TestAdminBanUser - бан закрывает вход и отзывает refresh-токены
func TestAdminBanUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, target := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/users/"+target.ID+"/status", adminToken, map[string]interface{}{
		"status": "Banned",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Refresh-токены отозваны
	var tokenCount int64
	tx.Model(&models.RefreshToken{}).Where("user_id = ?", target.ID).Count(&tokenCount)
	assert.Equal(t, int64(0), tokenCount)

	// Повторный логин закрыт
	logRes, logBody := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    target.Email,
		"password": target.PasswordHash, // хелпер хранит тут сырой пароль
	})
	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBody, "banned")
}

// TestAdminCannotBanSelf - админ не может модифицировать собственный аккаунт
func TestAdminCannotBanSelf(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/users/"+admin.ID+"/status", adminToken, map[string]interface{}{
		"status": "Banned",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Cannot modify your own account")
}

// TestAdminPromoteToProvider - смена роли user -> provider заводит карточку Pending
func TestAdminPromoteToProvider(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, target := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/users/"+target.ID+"/role", adminToken, map[string]interface{}{
		"role": "provider",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var provider models.Provider
	assert.NoError(t, tx.First(&provider, "id = ?", target.ID).Error)
	assert.Equal(t, models.ProviderStatusPending, provider.Status)
}

// TestAdminDeleteUser - удаление каскадом убирает карточку провайдера и токены
func TestAdminDeleteUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, target, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	_, _, other := helpers.CreateAndLoginProvider(t, ts, tx)

	// Пользователь успел пожаловаться на другого провайдера
	CreateTestReport(t, tx, target.ID, other.ID, models.ReportStatusPending)

	res, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/users/"+target.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	tx.Model(&models.Profile{}).Where("id = ?", target.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	tx.Model(&models.Provider{}).Where("id = ?", provider.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	tx.Model(&models.RefreshToken{}).Where("user_id = ?", target.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	tx.Model(&models.Report{}).Where("reporter_id = ?", target.ID).Count(&count)
	assert.Equal(t, int64(0), count, "жалобы автора ушли каскадом")
}
