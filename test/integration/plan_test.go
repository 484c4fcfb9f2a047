package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestPublicPlans_OnlyActive - прайсинг показывает только активные тарифы
func TestPublicPlans_OnlyActive(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	active := CreateTestPlan(t, tx, "Starter", 0, models.PlanStatusActive)
	retired := CreateTestPlan(t, tx, "Retired", 5, models.PlanStatusInactive)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/plans", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, active.ID)
	assert.NotContains(t, bodyStr, retired.ID)
}

// TestAdminCreatePlan_Defaults - пустые поля заполняются дефолтами
func TestAdminCreatePlan_Defaults(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/plans", adminToken, map[string]interface{}{
		"name":            "Premium",
		"price":           99.0,
		"leads_per_month": 100,
		"features":        map[string]interface{}{"max_portfolio_uploads": 50},
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var plan struct {
		Currency     string         `json:"currency"`
		BillingCycle string         `json:"billing_cycle"`
		Status       string         `json:"status"`
		Priority     string         `json:"priority"`
		Features     map[string]any `json:"features"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &plan))
	assert.Equal(t, "USD", plan.Currency)
	assert.Equal(t, "Monthly", plan.BillingCycle)
	assert.Equal(t, "Active", plan.Status)
	assert.Equal(t, "Normal", plan.Priority)
	assert.Equal(t, float64(50), plan.Features["max_portfolio_uploads"])
}

// TestAdminUpdatePlan - частичное обновление тарифа
func TestAdminUpdatePlan(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	plan := CreateTestPlan(t, tx, "Growth", 29, models.PlanStatusActive)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/admin/plans/"+plan.ID, adminToken, map[string]interface{}{
		"price":  39.0,
		"status": "Inactive",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var updated models.Plan
	assert.NoError(t, tx.First(&updated, "id = ?", plan.ID).Error)
	assert.Equal(t, 39.0, updated.Price)
	assert.Equal(t, models.PlanStatusInactive, updated.Status)
	assert.Equal(t, "Growth", updated.Name, "Непереданные поля не трогаются")
}

// TestAdminDeletePlan_AssignedConflict - тариф с провайдерами удалить нельзя
func TestAdminDeletePlan_AssignedConflict(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	plan := CreateTestPlan(t, tx, "Sticky", 19, models.PlanStatusActive)

	assert.NoError(t, tx.Model(&models.Provider{}).Where("id = ?", provider.ID).Update("plan_id", plan.ID).Error)

	res, bodyStr := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/plans/"+plan.ID, adminToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "assigned to providers")

	// Без провайдеров удаление проходит
	assert.NoError(t, tx.Model(&models.Provider{}).Where("id = ?", provider.ID).Update("plan_id", nil).Error)
	res2, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/plans/"+plan.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res2.StatusCode)
}
