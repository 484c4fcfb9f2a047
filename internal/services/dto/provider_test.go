package dto

import (
	"testing"

	"evently_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewProviderResponse_Fallbacks(t *testing.T) {
	assert.Nil(t, NewProviderResponse(nil, nil, nil))

	provider := &models.Provider{
		ID:           "p-1",
		BusinessName: "Test Events Co.",
		Status:       models.ProviderStatusActive,
		IsVerified:   true,
		Currency:     "USD",
	}

	resp := NewProviderResponse(provider, nil, nil)
	assert.Equal(t, "Free", resp.Plan, "Без тарифа показываем Free")
	assert.NotNil(t, resp.Services, "Пустые ассоциации сериализуются как [], а не null")
	assert.NotNil(t, resp.EventTypes)
	assert.Empty(t, resp.Services)
	assert.Equal(t, "Active", resp.Status)
}

func TestNewProviderResponse_WithJoins(t *testing.T) {
	provider := &models.Provider{
		ID:           "p-2",
		BusinessName: "Joined Events",
		Status:       models.ProviderStatusActive,
		Plan:         &models.Plan{Name: "Pro"},
		Packages: []models.ProviderPackage{
			{Name: "Silver", Price: 500},
		},
	}
	provider.SetSocialMedia(map[string]string{"instagram": "@joined"})

	resp := NewProviderResponse(provider, []string{"dj"}, []string{"wedding"})
	assert.Equal(t, "Pro", resp.Plan)
	assert.Equal(t, []string{"dj"}, resp.Services)
	assert.Equal(t, []string{"wedding"}, resp.EventTypes)
	assert.Equal(t, "@joined", resp.SocialMedia["instagram"])
	assert.Len(t, resp.Packages, 1)
	assert.Equal(t, "Silver", resp.Packages[0].Name)
}

func TestNewProviderAdminRow_Fallbacks(t *testing.T) {
	provider := &models.Provider{
		ID:           "p-3",
		BusinessName: "Orphan Events",
		Status:       models.ProviderStatusPending,
	}

	row := NewProviderAdminRow(provider)
	assert.Equal(t, "Unknown", row.Representative)
	assert.Equal(t, "Unknown", row.Email)
	assert.Equal(t, "Free", row.Plan)

	provider.Profile = &models.Profile{FullName: "Jane Owner", Email: "jane@test.com"}
	provider.Plan = &models.Plan{Name: "Top"}
	row = NewProviderAdminRow(provider)
	assert.Equal(t, "Jane Owner", row.Representative)
	assert.Equal(t, "jane@test.com", row.Email)
	assert.Equal(t, "Top", row.Plan)
}

func TestNewReportResponse_Fallbacks(t *testing.T) {
	report := &models.Report{
		ReporterID: "u-1",
		ProviderID: "p-1",
		ReportType: "spam",
	}

	resp := NewReportResponse(report)
	assert.Equal(t, "Unknown", resp.Reporter)
	assert.Equal(t, "Unknown", resp.Provider)
	assert.Equal(t, "pending", resp.Status, "Пустой статус читается как pending")
	assert.NotNil(t, resp.Attachments)
	assert.Empty(t, resp.Attachments)
}

func TestNewPackageResponse_Defaults(t *testing.T) {
	pkg := &models.ProviderPackage{
		Name:  "Bare",
		Price: 100,
	}

	resp := NewPackageResponse(pkg)
	assert.Equal(t, "USD", resp.Currency, "Пустая валюта заменяется на USD")
	assert.NotNil(t, resp.EventTypes)
	assert.Empty(t, resp.EventTypes)
}
