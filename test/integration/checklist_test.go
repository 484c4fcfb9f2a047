package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestChecklists_List - статические чеклисты отдаются без авторизации
func TestChecklists_List(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, nil, "GET", "/api/v1/checklists", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Templates []struct {
			EventType string `json:"event_type"`
			Title     string `json:"title"`
		} `json:"templates"`
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, len(response.Templates), response.Total)

	eventTypes := map[string]bool{}
	for _, tpl := range response.Templates {
		eventTypes[tpl.EventType] = true
	}
	assert.True(t, eventTypes["wedding"])
	assert.True(t, eventTypes["baby-shower"])
}

// TestChecklists_Get - чеклист конкретного типа события
func TestChecklists_Get(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, nil, "GET", "/api/v1/checklists/wedding", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var template struct {
		EventType string `json:"event_type"`
		Items     []struct {
			Label string `json:"label"`
		} `json:"items"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &template))
	assert.Equal(t, "wedding", template.EventType)
	assert.NotEmpty(t, template.Items)
}

// TestChecklists_UnknownEventType - неизвестный тип события дает 404
func TestChecklists_UnknownEventType(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, nil, "GET", "/api/v1/checklists/quinceanera", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "not found")
}
