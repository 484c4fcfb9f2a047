package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		label    string
		expected string
	}{
		{"Baby Shower", "baby-shower"},
		{"DJ", "dj"},
		{"Photographer", "photographer"},
		{"  Corporate   Event  ", "corporate-event"},
		{"Rock & Roll Band", "rock-roll-band"},
		{"Wedding (Outdoor)", "wedding-outdoor"},
		{"Кафе", ""},
		{"", ""},
		{"---", ""},
		{"a", "a"},
		{"21st Birthday!!!", "21st-birthday"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Slugify(tc.label), "label: %q", tc.label)
	}
}
