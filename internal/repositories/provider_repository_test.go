package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffAssociations(t *testing.T) {
	cases := []struct {
		name            string
		current         []string
		desired         []string
		expectedAdded   []string
		expectedRemoved []string
	}{
		{
			name:            "добавление к пустому набору",
			current:         nil,
			desired:         []string{"dj", "photographer"},
			expectedAdded:   []string{"dj", "photographer"},
			expectedRemoved: nil,
		},
		{
			name:            "полная очистка",
			current:         []string{"dj", "photographer"},
			desired:         nil,
			expectedAdded:   nil,
			expectedRemoved: []string{"dj", "photographer"},
		},
		{
			name:            "частичная замена",
			current:         []string{"dj", "photographer"},
			desired:         []string{"photographer", "florist"},
			expectedAdded:   []string{"florist"},
			expectedRemoved: []string{"dj"},
		},
		{
			name:            "без изменений",
			current:         []string{"dj"},
			desired:         []string{"dj"},
			expectedAdded:   nil,
			expectedRemoved: nil,
		},
		{
			name:            "дубликаты в желаемом наборе не ломают diff",
			current:         []string{"dj"},
			desired:         []string{"dj", "dj", "florist"},
			expectedAdded:   []string{"florist"},
			expectedRemoved: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			added, removed := DiffAssociations(tc.current, tc.desired)
			assert.Equal(t, tc.expectedAdded, added)
			assert.Equal(t, tc.expectedRemoved, removed)
		})
	}
}
