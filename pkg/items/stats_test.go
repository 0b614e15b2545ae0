package items

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adfharrison1/go-items/pkg/domain"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.Item
		expected Stats
	}{
		{
			name:     "mixed",
			items:    []domain.Item{{ID: 1, Active: true}, {ID: 2, Active: true}, {ID: 3}},
			expected: Stats{Total: 3, Active: 2, Inactive: 1},
		},
		{name: "empty", items: []domain.Item{}, expected: Stats{}},
		{name: "nil", items: nil, expected: Stats{}},
		{
			name:     "all active",
			items:    []domain.Item{{ID: 1, Active: true}, {ID: 2, Active: true}},
			expected: Stats{Total: 2, Active: 2},
		},
		{
			name:     "all inactive",
			items:    []domain.Item{{ID: 1}, {ID: 2}},
			expected: Stats{Total: 2, Inactive: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeStats(tt.items))
		})
	}
}
