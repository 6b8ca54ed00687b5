package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Fraction is truncated",
			amount:   452875.4,
			expected: "$452,875",
		},
		{
			name:     "Round amount",
			amount:   300000,
			expected: "$300,000",
		},
		{
			name:     "Below one thousand",
			amount:   950,
			expected: "$950",
		},
		{
			name:     "Millions",
			amount:   1234567.89,
			expected: "$1,234,567",
		},
		{
			name:     "Zero",
			amount:   0,
			expected: "$0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.amount))
		})
	}
}
