package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hdbvalue/server/config"
	"hdbvalue/server/internal/database"
	"hdbvalue/server/internal/features"
	"hdbvalue/server/internal/format"
	"hdbvalue/server/internal/models"
	"hdbvalue/server/internal/predictor"
)

const recentTransactionLimit = 5

// Disclaimer shown with every estimate. The prediction is a guide, not a
// valuation.
const disclaimer = "This is a machine-learning estimate based on historical transaction data. " +
	"Actual prices may vary due to renovation status and interior condition, floor level and " +
	"unit orientation, proximity to MRT, schools and amenities, and unique property features. " +
	"Treat it as a guide, not an official valuation. For serious buying, selling or financial " +
	"decisions, always check with HDB or a licensed property agent."

type Handler struct {
	db        *database.Database
	predictor predictor.Predictor
	logger    *logrus.Logger

	// datasetReady is false when the historical dataset could not be
	// loaded. The recent-transactions view degrades to an informational
	// message; prediction is unaffected.
	datasetReady bool
}

func NewHandler(db *database.Database, pred predictor.Predictor, datasetReady bool, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:           db,
		predictor:    pred,
		logger:       logger,
		datasetReady: datasetReady,
	}
}

// Index serves the single-page form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "HDB Resale Price Predictor",
	})
}

// GetCatalog returns the enumerations, defaults and bounds the form needs.
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"flat_types":  config.FlatTypes,
		"towns":       config.SortedTowns(),
		"flat_models": config.SortedFlatModels(),
		"defaults": gin.H{
			"floor_area_sqm":        config.FloorAreaDefault,
			"year_built":            config.YearBuiltDefault,
			"flat_age":              config.FlatAgeDefault,
			"remaining_lease_years": config.RemainingLeaseDefault,
		},
		"bounds": gin.H{
			"floor_area_sqm":        []int{config.FloorAreaMin, config.FloorAreaMax},
			"year_built":            []int{config.YearBuiltMin, time.Now().Year()},
			"flat_age":              []int{0, config.FlatAgeMax},
			"remaining_lease_years": []int{1, config.RemainingLeaseMax},
		},
	})
}

// GetRecentTransactions returns the 5 most recent transactions for a town.
// Dataset problems and empty results are informational, never errors: the
// rest of the page must keep working without this view.
func (h *Handler) GetRecentTransactions(c *gin.Context) {
	town := c.Query("town")
	if !config.IsValidTown(town) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown town %q", town)})
		return
	}

	if !h.datasetReady {
		c.JSON(http.StatusOK, gin.H{
			"transactions": []models.TransactionRow{},
			"message":      "Could not load recent transactions data.",
		})
		return
	}

	transactions, err := h.db.RecentTransactions(town, recentTransactionLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to query recent transactions")
		c.JSON(http.StatusOK, gin.H{
			"transactions": []models.TransactionRow{},
			"message":      "Could not load recent transactions data.",
		})
		return
	}

	if len(transactions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"transactions": []models.TransactionRow{},
			"message":      fmt.Sprintf("No recent transactions found for %s.", town),
		})
		return
	}

	rows := make([]models.TransactionRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = models.TransactionRow{
			Block:       tx.Block,
			Street:      tx.StreetName,
			Model:       tx.FlatModel,
			Type:        tx.FlatType,
			AreaSqm:     tx.FloorAreaSqm,
			ResalePrice: format.Currency(tx.ResalePrice),
			Month:       tx.Month.Format("2006-01"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"transactions": rows})
}

// Predict runs the full input-to-prediction pipeline for one request. It is
// triggered only by the explicit form action, never on field changes.
func (h *Handler) Predict(c *gin.Context) {
	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Failed to parse predict request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	if err := features.Validate(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flatAge, remainingLease, err := features.ResolveAge(input.AgeInput, time.Now().Year())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := features.Build(input, flatAge, remainingLease)
	row := features.Reindex(record, h.predictor.FeatureNames())

	price, err := h.predictor.Predict(row)
	if err != nil {
		h.logger.WithError(err).Error("Prediction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, models.PredictionResult{
		PredictionID:   uuid.NewString(),
		EstimatedPrice: price,
		FormattedPrice: format.Currency(price),
		Summary: models.PropertySummary{
			FlatType:            input.FlatType,
			FloorAreaSqm:        input.FloorAreaSqm,
			FlatAge:             flatAge,
			Town:                input.Town,
			FlatModel:           input.FlatModel,
			RemainingLeaseYears: remainingLease,
		},
		Disclaimer: disclaimer,
		Timestamp:  time.Now().UTC(),
	})
}

// Health reports liveness and how many transactions were seeded.
func (h *Handler) Health(c *gin.Context) {
	var count int64
	if h.datasetReady {
		if n, err := h.db.CountTransactions(); err == nil {
			count = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"model_loaded":  h.predictor != nil,
		"dataset_ready": h.datasetReady,
		"transactions":  count,
	})
}
