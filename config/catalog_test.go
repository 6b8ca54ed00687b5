package config

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, FlatTypes, 7)
	assert.Len(t, Towns, 26)
	assert.Len(t, FlatModels, 16)
}

func TestSortedTowns(t *testing.T) {
	sorted := SortedTowns()

	assert.Len(t, sorted, len(Towns))
	assert.True(t, sort.StringsAreSorted(sorted))
	assert.ElementsMatch(t, Towns, sorted)

	// The original slice must not be reordered in place
	assert.Equal(t, "ANG MO KIO", Towns[0])
	assert.Equal(t, "YISHUN", Towns[len(Towns)-1])
}

func TestSortedFlatModels(t *testing.T) {
	sorted := SortedFlatModels()

	assert.True(t, sort.StringsAreSorted(sorted))
	assert.ElementsMatch(t, FlatModels, sorted)
	assert.Equal(t, "Improved", FlatModels[0])
}

func TestIsValidTown(t *testing.T) {
	tests := []struct {
		name     string
		town     string
		expected bool
	}{
		{
			name:     "Known town",
			town:     "BEDOK",
			expected: true,
		},
		{
			name:     "Town with slash",
			town:     "KALLANG/WHAMPOA",
			expected: true,
		},
		{
			name:     "Case mismatch is rejected",
			town:     "bedok",
			expected: false,
		},
		{
			name:     "Unknown town",
			town:     "ORCHARD",
			expected: false,
		},
		{
			name:     "Empty string",
			town:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidTown(tt.town))
		})
	}
}

func TestIsValidFlatType(t *testing.T) {
	assert.True(t, IsValidFlatType("4 ROOM"))
	assert.True(t, IsValidFlatType("MULTI-GENERATION"))
	assert.False(t, IsValidFlatType("4-ROOM"))
	assert.False(t, IsValidFlatType("STUDIO"))
}

func TestIsValidFlatModel(t *testing.T) {
	assert.True(t, IsValidFlatModel("Improved"))
	assert.True(t, IsValidFlatModel("Type S1"))
	assert.False(t, IsValidFlatModel("improved"))
	assert.False(t, IsValidFlatModel("Penthouse"))
}
