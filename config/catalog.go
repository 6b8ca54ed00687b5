package config

import "sort"

// Catalog holds the fixed enumerations and form defaults for the estimator.
// These mirror the categories the regression model was trained on; the API
// rejects values outside them before they reach the feature pipeline.

// FlatTypes is the fixed set of HDB flat types.
var FlatTypes = []string{
	"1 ROOM", "2 ROOM", "3 ROOM", "4 ROOM", "5 ROOM", "EXECUTIVE", "MULTI-GENERATION",
}

// Towns is the fixed set of HDB towns with resale transactions.
var Towns = []string{
	"ANG MO KIO", "BEDOK", "BISHAN", "BUKIT BATOK", "BUKIT MERAH", "BUKIT PANJANG",
	"BUKIT TIMAH", "CENTRAL AREA", "CHOA CHU KANG", "CLEMENTI", "GEYLANG", "HOUGANG",
	"JURONG EAST", "JURONG WEST", "KALLANG/WHAMPOA", "MARINE PARADE", "PASIR RIS",
	"PUNGGOL", "QUEENSTOWN", "SEMBAWANG", "SENGKANG", "SERANGOON", "TAMPINES",
	"TOA PAYOH", "WOODLANDS", "YISHUN",
}

// FlatModels is the fixed set of HDB flat model variants.
var FlatModels = []string{
	"Improved", "New Generation", "Simplified", "Premium Apartment", "Maisonette",
	"Apartment", "Adjoined flat", "Type S1", "Type S2", "Standard", "DBSS", "Terrace",
	"Model A2", "2-room", "Type 1", "Type 2",
}

// Form defaults and bounds. Floor area and year built are range-clamped by
// the page widgets; the API enforces the same bounds on the predict request.
const (
	FloorAreaMin     = 30
	FloorAreaMax     = 200
	FloorAreaDefault = 75

	YearBuiltMin     = 1960
	YearBuiltDefault = 2000

	FlatAgeMax     = 60
	FlatAgeDefault = 25

	RemainingLeaseMax     = 99
	RemainingLeaseDefault = 70
)

// SortedTowns returns the town list in alphabetical order for display.
func SortedTowns() []string {
	out := make([]string, len(Towns))
	copy(out, Towns)
	sort.Strings(out)
	return out
}

// SortedFlatModels returns the flat model list in alphabetical order for display.
func SortedFlatModels() []string {
	out := make([]string, len(FlatModels))
	copy(out, FlatModels)
	sort.Strings(out)
	return out
}

// IsValidFlatType reports whether t is one of the known flat types.
func IsValidFlatType(t string) bool {
	return contains(FlatTypes, t)
}

// IsValidTown reports whether t is one of the known towns. Matching is
// case-sensitive: the model and the dataset both use the canonical spelling.
func IsValidTown(t string) bool {
	return contains(Towns, t)
}

// IsValidFlatModel reports whether m is one of the known flat models.
func IsValidFlatModel(m string) bool {
	return contains(FlatModels, m)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
