package predictor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Predictor is the capability exposed by the trained regression model. The
// rest of the service depends only on this interface, so the artifact format
// can change (or be stubbed in tests) without touching the pipeline.
type Predictor interface {
	// FeatureNames returns the ordered list of feature columns the model
	// expects. Rows passed to Predict must follow this exact order.
	FeatureNames() []string

	// Predict takes one feature row and returns one estimated resale price.
	Predict(row []interface{}) (float64, error)
}

// artifact is the on-disk shape of the exported model: the ordered feature
// list plus per-feature weights produced by the offline training run.
type artifact struct {
	Features    []string                      `json:"features"`
	Intercept   float64                       `json:"intercept"`
	Numeric     map[string]float64            `json:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical"`
}

// Model is the deserialized regression model artifact.
type Model struct {
	art artifact
}

// Load reads and validates a model artifact. Any failure here is terminal
// for the caller: the service cannot estimate prices without a model.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(art.Features) == 0 {
		return nil, fmt.Errorf("model artifact declares no features")
	}
	for _, name := range art.Features {
		_, isNumeric := art.Numeric[name]
		_, isCategorical := art.Categorical[name]
		if !isNumeric && !isCategorical {
			return nil, fmt.Errorf("model artifact has no weights for feature %q", name)
		}
	}

	return &Model{art: art}, nil
}

// FeatureNames returns a copy of the declared feature order.
func (m *Model) FeatureNames() []string {
	names := make([]string, len(m.art.Features))
	copy(names, m.art.Features)
	return names
}

// Predict scores a single row. The row must be positionally aligned with
// FeatureNames. Unknown categorical levels contribute nothing to the score,
// matching how the training pipeline encodes unseen categories.
func (m *Model) Predict(row []interface{}) (float64, error) {
	if len(row) != len(m.art.Features) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.art.Features), len(row))
	}

	price := m.art.Intercept
	for i, name := range m.art.Features {
		if weight, ok := m.art.Numeric[name]; ok {
			value, err := toFloat(row[i])
			if err != nil {
				return 0, fmt.Errorf("feature %q: %w", name, err)
			}
			price += weight * value
			continue
		}

		levels := m.art.Categorical[name]
		if s, ok := row[i].(string); ok {
			price += levels[s]
		}
		// Non-string values for a categorical feature are reindex fills
		// and carry no weight.
	}

	return price, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}
