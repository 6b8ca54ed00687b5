package models

import "time"

// AgeInputMode selects how the flat's age is supplied. The two modes are
// mutually exclusive: a request carries either a year built or a manual
// age/lease pair, never both.
type AgeInputMode string

const (
	AgeModeYearBuilt AgeInputMode = "year_built"
	AgeModeManual    AgeInputMode = "manual"
)

// AgeInput is the tagged age variant attached to a predict request.
// YearBuilt is read only in year_built mode; FlatAge and RemainingLeaseYears
// only in manual mode.
type AgeInput struct {
	Mode                AgeInputMode `json:"mode" binding:"required,oneof=year_built manual"`
	YearBuilt           int          `json:"year_built,omitempty"`
	FlatAge             int          `json:"flat_age,omitempty"`
	RemainingLeaseYears int          `json:"remaining_lease_years,omitempty"`
}

// PropertyInput is the transient snapshot of one user interaction. It is
// built fresh per request and discarded after the prediction is rendered.
type PropertyInput struct {
	FloorAreaSqm float64  `json:"floor_area_sqm" binding:"required,min=30,max=200"`
	FlatType     string   `json:"flat_type" binding:"required"`
	Town         string   `json:"town" binding:"required"`
	FlatModel    string   `json:"flat_model" binding:"required"`
	AgeInput     AgeInput `json:"age_input" binding:"required"`
}

// Transaction is one historical resale transaction from the dataset.
type Transaction struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Town         string    `gorm:"index" json:"town"`
	Block        string    `json:"block"`
	StreetName   string    `json:"street_name"`
	FlatModel    string    `json:"flat_model"`
	FlatType     string    `json:"flat_type"`
	FloorAreaSqm float64   `json:"floor_area_sqm"`
	ResalePrice  float64   `json:"resale_price"`
	Month        time.Time `gorm:"index" json:"month"`
}

// TransactionRow is a display-formatted transaction for the recent
// transactions table.
type TransactionRow struct {
	Block       string  `json:"Block"`
	Street      string  `json:"Street"`
	Model       string  `json:"Model"`
	Type        string  `json:"Type"`
	AreaSqm     float64 `json:"Area (sqm)"`
	ResalePrice string  `json:"Resale Price"`
	Month       string  `json:"Month"`
}

// PropertySummary restates the six collected input values alongside the
// estimate.
type PropertySummary struct {
	FlatType            string  `json:"flat_type"`
	FloorAreaSqm        float64 `json:"floor_area_sqm"`
	FlatAge             int     `json:"flat_age"`
	Town                string  `json:"town"`
	FlatModel           string  `json:"flat_model"`
	RemainingLeaseYears int     `json:"remaining_lease_years"`
}

// PredictionResult is the response of the predict endpoint.
type PredictionResult struct {
	PredictionID   string          `json:"prediction_id"`
	EstimatedPrice float64         `json:"estimated_price"`
	FormattedPrice string          `json:"formatted_price"`
	Summary        PropertySummary `json:"summary"`
	Disclaimer     string          `json:"disclaimer"`
	Timestamp      time.Time       `json:"timestamp"`
}
