package services

import (
	"sort"
	"testing"

	"evently_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistService_List(t *testing.T) {
	svc := NewChecklistService()

	response := svc.List()
	require.NotNil(t, response)
	assert.Equal(t, len(response.Templates), response.Total)
	assert.GreaterOrEqual(t, response.Total, 4)

	// Порядок стабильный - по ключу типа события
	eventTypes := make([]string, 0, len(response.Templates))
	for _, tpl := range response.Templates {
		eventTypes = append(eventTypes, tpl.EventType)
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.Items)
	}
	assert.True(t, sort.StringsAreSorted(eventTypes))
	assert.Contains(t, eventTypes, "wedding")
	assert.Contains(t, eventTypes, "baby-shower")
}

func TestChecklistService_Get(t *testing.T) {
	svc := NewChecklistService()

	template, err := svc.Get("wedding")
	require.NoError(t, err)
	assert.Equal(t, "wedding", template.EventType)
	for _, item := range template.Items {
		assert.NotEmpty(t, item.Label)
	}

	_, err = svc.Get("quinceanera")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
