package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{
			name:        "Valid artifact",
			path:        "testdata/model.json",
			expectError: false,
		},
		{
			name:        "Missing file",
			path:        "testdata/does_not_exist.json",
			expectError: true,
			errContains: "failed to read model artifact",
		},
		{
			name:        "Corrupt artifact",
			path:        "testdata/corrupt.json",
			expectError: true,
			errContains: "failed to parse model artifact",
		},
		{
			name:        "Feature without weights",
			path:        "testdata/missing_weights.json",
			expectError: true,
			errContains: "no weights for feature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Load(tt.path)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, model)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, model)
			}
		})
	}
}

func TestFeatureNames(t *testing.T) {
	model, err := Load("testdata/model.json")
	assert.NoError(t, err)

	names := model.FeatureNames()
	assert.Equal(t, []string{"floor_area_sqm", "flat_age", "town"}, names)

	// Mutating the returned slice must not affect the model
	names[0] = "tampered"
	assert.Equal(t, []string{"floor_area_sqm", "flat_age", "town"}, model.FeatureNames())
}

func TestPredict(t *testing.T) {
	model, err := Load("testdata/model.json")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		row         []interface{}
		expected    float64
		expectError bool
	}{
		{
			name: "Known town",
			row:  []interface{}{90.0, 20, "BEDOK"},
			// 10000 + 4000*90 - 2000*20 + 15000
			expected: 345000,
		},
		{
			name: "Unknown town level contributes nothing",
			row:  []interface{}{90.0, 20, "NOWHERE"},
			// 10000 + 4000*90 - 2000*20
			expected: 330000,
		},
		{
			name:     "Categorical filled with zero contributes nothing",
			row:      []interface{}{90.0, 20, 0},
			expected: 330000,
		},
		{
			name: "Integer numeric values",
			row:  []interface{}{100, 0, "TAMPINES"},
			// 10000 + 4000*100 + 20000
			expected: 430000,
		},
		{
			name:        "Wrong row length",
			row:         []interface{}{90.0, 20},
			expectError: true,
		},
		{
			name:        "Non-numeric value for numeric feature",
			row:         []interface{}{"ninety", 20, "BEDOK"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := model.Predict(tt.row)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.expected, price, 0.001)
			}
		})
	}
}
