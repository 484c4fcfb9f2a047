package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestPackages_PublicListOnlyActive - публично видны только активные пакеты
func TestPackages_PublicListOnlyActive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	visible := CreateTestPackage(t, tx, provider.ID, "Silver", 500, true)
	hidden := CreateTestPackage(t, tx, provider.ID, "Draft", 100, false)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/providers/"+provider.ID+"/packages", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, visible.ID)
	assert.NotContains(t, bodyStr, hidden.ID)

	// Владелец в своем кабинете видит и черновики
	ownerToken, _, owner := helpers.CreateAndLoginProvider(t, ts, tx)
	draft := CreateTestPackage(t, tx, owner.ID, "My Draft", 50, false)
	mineRes, mineBody := ts.SendRequest(t, tx, "GET", "/api/v1/provider/me/packages", ownerToken, nil)
	assert.Equal(t, http.StatusOK, mineRes.StatusCode)
	assert.Contains(t, mineBody, draft.ID)
}

// TestPackages_Create - создание пакета с дефолтной валютой
func TestPackages_Create(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginProvider(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/provider/me/packages", token, map[string]interface{}{
		"name":        "Gold Wedding",
		"description": "Full day coverage",
		"price":       2500.0,
		"event_types": []string{"wedding"},
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var pkg struct {
		Name       string   `json:"name"`
		Currency   string   `json:"currency"`
		EventTypes []string `json:"event_types"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &pkg))
	assert.Equal(t, "Gold Wedding", pkg.Name)
	assert.Equal(t, "USD", pkg.Currency)
	assert.Equal(t, []string{"wedding"}, pkg.EventTypes)
}

// TestPackages_UpdateAndDelete - частичное обновление и удаление своего пакета
func TestPackages_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	pkg := CreateTestPackage(t, tx, provider.ID, "Bronze", 300, true)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me/packages/"+pkg.ID, token, map[string]interface{}{
		"price":     350.0,
		"is_active": false,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var updated models.ProviderPackage
	assert.NoError(t, tx.First(&updated, "id = ?", pkg.ID).Error)
	assert.Equal(t, 350.0, updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Bronze", updated.Name)

	delRes, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/provider/me/packages/"+pkg.ID, token, nil)
	assert.Equal(t, http.StatusOK, delRes.StatusCode)

	var count int64
	tx.Model(&models.ProviderPackage{}).Where("id = ?", pkg.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestPackages_ForeignPackageHidden - чужой пакет не редактируется
func TestPackages_ForeignPackageHidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, owner := helpers.CreateAndLoginProvider(t, ts, tx)
	otherToken, _, _ := helpers.CreateAndLoginProvider(t, ts, tx)
	pkg := CreateTestPackage(t, tx, owner.ID, "Protected", 999, true)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me/packages/"+pkg.ID, otherToken, map[string]interface{}{
		"price": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "not found")
}
