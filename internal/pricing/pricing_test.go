package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceExtras(t *testing.T) {
	tests := []struct {
		name           string
		customizations map[string]string
		expected       float64
	}{
		{
			name:           "nil map",
			customizations: nil,
			expected:       0,
		},
		{
			name:           "empty map",
			customizations: map[string]string{},
			expected:       0,
		},
		{
			name:           "no fries key",
			customizations: map[string]string{"Sauce": "Ketchup", "Meat": "Beef"},
			expected:       0,
		},
		{
			name:           "fries yes french label",
			customizations: map[string]string{"With fries": "Yes"},
			expected:       7,
		},
		{
			name:           "fries yes lower case",
			customizations: map[string]string{"With fries": "yes"},
			expected:       7,
		},
		{
			name:           "fries yes arabic label",
			customizations: map[string]string{"بطاطس": "نعم"},
			expected:       7,
		},
		{
			name:           "arabic label english answer",
			customizations: map[string]string{"بطاطس": "yes"},
			expected:       7,
		},
		{
			name:           "fries declined",
			customizations: map[string]string{"With fries": "No"},
			expected:       0,
		},
		{
			name:           "fries unrecognized answer",
			customizations: map[string]string{"With fries": "maybe"},
			expected:       0,
		},
		{
			name:           "fries alongside free options",
			customizations: map[string]string{"With fries": "Yes", "Sauce": "Mayo"},
			expected:       7,
		},
		{
			name:           "both labels charge once",
			customizations: map[string]string{"With fries": "Yes", "بطاطس": "نعم"},
			expected:       7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PriceExtras(tt.customizations))
		})
	}
}
