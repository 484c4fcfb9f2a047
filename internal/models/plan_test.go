package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanMaxPortfolioUploads(t *testing.T) {
	var nilPlan *Plan
	assert.Equal(t, 0, nilPlan.MaxPortfolioUploads(), "nil-план означает отсутствие лимита")

	empty := &Plan{}
	assert.Equal(t, 0, empty.MaxPortfolioUploads())

	limited := &Plan{}
	limited.SetFeatures(map[string]any{"max_portfolio_uploads": 25, "analytics_access": true})
	assert.Equal(t, 25, limited.MaxPortfolioUploads())

	malformed := &Plan{}
	malformed.SetFeatures(map[string]any{"max_portfolio_uploads": "many"})
	assert.Equal(t, 0, malformed.MaxPortfolioUploads())
}

func TestPlanFeaturesRoundTrip(t *testing.T) {
	plan := &Plan{}
	plan.SetFeatures(map[string]any{"custom_badge": "Top Vendor", "priority_support": true})

	features := plan.GetFeatures()
	assert.Equal(t, "Top Vendor", features["custom_badge"])
	assert.Equal(t, true, features["priority_support"])
}

func TestProviderSocialMedia(t *testing.T) {
	provider := &Provider{}
	assert.Empty(t, provider.GetSocialMedia())

	provider.SetSocialMedia(map[string]string{"instagram": "@events", "facebook": "events.page"})
	links := provider.GetSocialMedia()
	assert.Equal(t, "@events", links["instagram"])
	assert.Equal(t, "events.page", links["facebook"])
}
