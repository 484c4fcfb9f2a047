package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,is-user-role"`
	Status string `json:"status" validate:"omitempty,is-enquiry-status"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email: "user@test.com",
		Role:  "provider",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email: "not-an-email",
		Role:  "superuser",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "ожидается *ValidationError")

	// Ключи карты - имена из json-тегов, а не имена Go-полей
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")
	assert.Equal(t, "must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "must be one of: user, provider, admin", vErr.Errors["role"])
}

func TestValidate_CustomStatusRules(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "user@test.com",
		Role:   "user",
		Status: "archived",
	})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "must be one of: new, responded, booked, closed", vErr.Errors["status"])

	// Валидный статус проходит
	assert.NoError(t, v.Validate(&sampleRequest{
		Email:  "user@test.com",
		Role:   "user",
		Status: "booked",
	}))
}
