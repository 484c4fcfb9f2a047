package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"evently_backend/internal/models"
	"evently_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestCreateEnquiry_Anonymous - заявку может оставить незалогиненный посетитель
func TestCreateEnquiry_Anonymous(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/enquiries", "", map[string]interface{}{
		"provider_id":  provider.ID,
		"client_name":  "Walk-in Client",
		"client_email": "walkin@test.com",
		"event_type":   "wedding",
		"message":      "Are you free in June?",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var enquiry models.Enquiry
	assert.NoError(t, tx.First(&enquiry, "provider_id = ?", provider.ID).Error)
	assert.Nil(t, enquiry.UserID, "Анонимная заявка не привязана к пользователю")
	assert.Equal(t, models.EnquiryStatusNew, enquiry.Status)
}

// TestCreateEnquiry_LoggedInBindsUser - заявка залогиненного клиента
// привязывается к его аккаунту
func TestCreateEnquiry_LoggedInBindsUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)
	_, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/enquiries", clientToken, map[string]interface{}{
		"provider_id":  provider.ID,
		"client_name":  client.FullName,
		"client_email": client.Email,
		"message":      "Quote please",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var enquiry models.Enquiry
	assert.NoError(t, tx.First(&enquiry, "provider_id = ?", provider.ID).Error)
	if assert.NotNil(t, enquiry.UserID) {
		assert.Equal(t, client.ID, *enquiry.UserID)
	}

	// И видна в личном кабинете клиента
	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/users/me/enquiries", clientToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, enquiry.ID)
}

// TestCreateEnquiry_InactiveProvider - немодерированный провайдер заявок не принимает
func TestCreateEnquiry_InactiveProvider(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, pending := helpers.CreatePendingProvider(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/enquiries", "", map[string]interface{}{
		"provider_id":  pending.ID,
		"client_name":  "Hopeful Client",
		"client_email": "hopeful@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Provider is not active")
}

// TestProviderEnquiryTriage - провайдер видит свои заявки и двигает статус
func TestProviderEnquiryTriage(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	enquiry := CreateTestEnquiry(t, tx, provider.ID, nil, models.EnquiryStatusNew)

	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/provider/me/enquiries", token, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, enquiry.ID)

	getRes, getBody := ts.SendRequest(t, tx, "GET", "/api/v1/provider/me/enquiries/"+enquiry.ID, token, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBody, "jane@test.com")

	// new -> responded -> booked, откат обратно тоже разрешен
	for _, status := range []string{"responded", "booked", "responded"} {
		res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me/enquiries/"+enquiry.ID+"/status", token, map[string]interface{}{
			"status": status,
		})
		assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

		var updated struct {
			Status string `json:"status"`
		}
		assert.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
		assert.Equal(t, status, updated.Status)
	}
}

// TestProviderEnquiry_ForeignHidden - чужая заявка отдается как 404
func TestProviderEnquiry_ForeignHidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, owner := helpers.CreateAndLoginProvider(t, ts, tx)
	otherToken, _, _ := helpers.CreateAndLoginProvider(t, ts, tx)
	enquiry := CreateTestEnquiry(t, tx, owner.ID, nil, models.EnquiryStatusNew)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/provider/me/enquiries/"+enquiry.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Enquiry not found")

	// И статус чужой заявки тоже не двигается
	res2, _ := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me/enquiries/"+enquiry.ID+"/status", otherToken, map[string]interface{}{
		"status": "closed",
	})
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
}

// TestEnquiryStatus_InvalidValue - неизвестный статус режется валидацией
func TestEnquiryStatus_InvalidValue(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, provider := helpers.CreateAndLoginProvider(t, ts, tx)
	enquiry := CreateTestEnquiry(t, tx, provider.ID, nil, models.EnquiryStatusNew)

	res, bodyStr := ts.SendRequest(t, tx, "PATCH", "/api/v1/provider/me/enquiries/"+enquiry.ID+"/status", token, map[string]interface{}{
		"status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Validation failed")
}
