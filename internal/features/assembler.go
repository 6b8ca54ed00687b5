package features

import (
	"fmt"

	"hdbvalue/server/config"
	"hdbvalue/server/internal/models"
)

// Canonical feature names produced from a property input. The model decides
// which of these it consumes and in what order; see Reindex.
const (
	FeatureFloorArea      = "floor_area_sqm"
	FeatureFlatAge        = "flat_age"
	FeatureRemainingLease = "remaining_lease_years"
	FeatureFlatType       = "flat_type"
	FeatureTown           = "town"
	FeatureFlatModel      = "flat_model"
)

// Record is a single-row mapping from feature name to value.
type Record map[string]interface{}

// Validate checks a property input against the catalog. The page widgets
// structurally prevent out-of-range values; this guards the API surface.
func Validate(in models.PropertyInput) error {
	if in.FloorAreaSqm < config.FloorAreaMin || in.FloorAreaSqm > config.FloorAreaMax {
		return fmt.Errorf("floor area %.0f sqm is outside [%d, %d]",
			in.FloorAreaSqm, config.FloorAreaMin, config.FloorAreaMax)
	}
	if !config.IsValidFlatType(in.FlatType) {
		return fmt.Errorf("unknown flat type %q", in.FlatType)
	}
	if !config.IsValidTown(in.Town) {
		return fmt.Errorf("unknown town %q", in.Town)
	}
	if !config.IsValidFlatModel(in.FlatModel) {
		return fmt.Errorf("unknown flat model %q", in.FlatModel)
	}
	return nil
}

// ResolveAge computes the flat age and remaining lease from the active age
// input variant. Exactly one variant is read: year_built derives both values
// from the build year, manual passes the entered values through untouched.
func ResolveAge(in models.AgeInput, currentYear int) (flatAge, remainingLease int, err error) {
	switch in.Mode {
	case models.AgeModeYearBuilt:
		if in.YearBuilt < config.YearBuiltMin || in.YearBuilt > currentYear {
			return 0, 0, fmt.Errorf("year built %d is outside [%d, %d]",
				in.YearBuilt, config.YearBuiltMin, currentYear)
		}
		flatAge = currentYear - in.YearBuilt
		remainingLease = 99 - flatAge
		if remainingLease < 1 {
			remainingLease = 1
		}
		return flatAge, remainingLease, nil

	case models.AgeModeManual:
		if in.FlatAge < 0 || in.FlatAge > config.FlatAgeMax {
			return 0, 0, fmt.Errorf("flat age %d is outside [0, %d]", in.FlatAge, config.FlatAgeMax)
		}
		if in.RemainingLeaseYears < 1 || in.RemainingLeaseYears > config.RemainingLeaseMax {
			return 0, 0, fmt.Errorf("remaining lease %d is outside [1, %d]",
				in.RemainingLeaseYears, config.RemainingLeaseMax)
		}
		return in.FlatAge, in.RemainingLeaseYears, nil

	default:
		return 0, 0, fmt.Errorf("unknown age input mode %q", in.Mode)
	}
}

// Build assembles the single-row feature record from the collected input and
// the resolved age values.
func Build(in models.PropertyInput, flatAge, remainingLease int) Record {
	return Record{
		FeatureFloorArea:      in.FloorAreaSqm,
		FeatureFlatAge:        flatAge,
		FeatureRemainingLease: remainingLease,
		FeatureFlatType:       in.FlatType,
		FeatureTown:           in.Town,
		FeatureFlatModel:      in.FlatModel,
	}
}

// Reindex aligns a record to the model's declared feature order. Expected
// features absent from the record are filled with 0; record entries the
// model does not expect are dropped. The returned row is positional: index i
// holds the value for names[i].
func Reindex(rec Record, names []string) []interface{} {
	row := make([]interface{}, len(names))
	for i, name := range names {
		if value, ok := rec[name]; ok {
			row[i] = value
		} else {
			row[i] = 0
		}
	}
	return row
}
