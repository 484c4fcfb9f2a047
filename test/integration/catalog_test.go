package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAdminCreateService_SlugID - id записи каталога выводится из label
func TestAdminCreateService_SlugID(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/event-types", adminToken, map[string]interface{}{
		"label": "Baby Shower",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &entry))
	assert.Equal(t, "baby-shower", entry.ID)
	assert.Equal(t, "Baby Shower", entry.Name)
	t.Logf("СЛАГ: Успешно. Ответ: %s", bodyStr)
}

// TestAdminCreateService_DuplicateLabel - повтор label дает конфликт
func TestAdminCreateService_DuplicateLabel(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	CreateTestService(t, tx, "dj", "DJ", models.CatalogStatusActive)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/services", adminToken, map[string]interface{}{
		"label": "DJ",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already exists")
}

// TestPublicCatalog_OnlyActive - публичный каталог скрывает выключенные записи
func TestPublicCatalog_OnlyActive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	CreateTestService(t, tx, "florist", "Florist", models.CatalogStatusActive)
	CreateTestService(t, tx, "caterer", "Caterer", models.CatalogStatusInactive)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/services", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "florist")
	assert.NotContains(t, bodyStr, "caterer")
}

// TestAdminCatalogList_IncludesInactive - админский список видит все записи
// вместе со счетчиком провайдеров
func TestAdminCatalogList_IncludesInactive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	CreateTestService(t, tx, "band", "Live Band", models.CatalogStatusInactive)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/admin/services", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "band")
	assert.Contains(t, bodyStr, "providers")
}

// TestAdminSetCatalogStatus - выключение записи убирает её с витрины
func TestAdminSetCatalogStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	CreateTestEventType(t, tx, "graduation", "Graduation", models.CatalogStatusActive)

	res, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/event-types/graduation/status", adminToken, map[string]interface{}{
		"status": "Inactive",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	_, publicBody := ts.SendRequest(t, tx, "GET", "/api/v1/event-types", "", nil)
	assert.NotContains(t, publicBody, "graduation")
}

// TestAdminDeleteCatalogEntry - удаление несуществующей записи дает 404
func TestAdminDeleteCatalogEntry(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	CreateTestService(t, tx, "valet", "Valet Parking", models.CatalogStatusActive)

	res, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/services/valet", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res2, bodyStr := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/services/valet", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
	assert.Contains(t, bodyStr, "not found")
}

// TestAdminDeleteCatalogEntry_DropsAssociations - удаление услуги чистит
// join-строки, и профиль провайдера больше не отдает этот слаг
func TestAdminDeleteCatalogEntry_DropsAssociations(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	// 1. Arrange: провайдер привязан к услуге через свой кабинет
	providerToken, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	CreateTestService(t, tx, "florist", "Florist", models.CatalogStatusActive)

	res, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me", providerToken, map[string]interface{}{
		"services": []string{"florist"},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// 2. Act: админ удаляет услугу из каталога
	res, bodyStr := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/services/florist", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	// 3. Assert: join-строк не осталось, публичный профиль без слага
	var count int64
	tx.Model(&models.ProviderService{}).Where("service_id = ?", "florist").Count(&count)
	assert.Zero(t, count, "join-строки удалены вместе с услугой")

	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/providers/"+provider.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "florist")
	t.Logf("КАТАЛОГ: Удаление услуги очистило связи провайдера %s", provider.ID)
}
