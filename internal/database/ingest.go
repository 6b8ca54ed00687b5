package database

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"hdbvalue/server/internal/models"
)

// Month layouts accepted in the dataset, tried in order.
var monthLayouts = []string{"2006-01", "2006-01-02", "Jan-2006"}

// Columns the dataset must carry. Extra columns are ignored.
var requiredColumns = []string{
	"town", "block", "street_name", "flat_model", "flat_type",
	"floor_area_sqm", "resale_price", "month",
}

const insertBatchSize = 500

// ImportCSV seeds the store from the historical transactions file. Rows with
// an unparseable month or malformed numeric fields are skipped, not
// defaulted. Returns the number of imported and skipped rows.
func (d *Database) ImportCSV(path string) (imported, skipped int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read dataset header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return 0, 0, fmt.Errorf("dataset is missing column %q", name)
		}
	}

	batch := make([]models.Transaction, 0, insertBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := d.db.CreateInBatches(batch, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}
		imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			skipped++
			continue
		}

		tx, ok := d.parseRow(row, columns)
		if !ok {
			skipped++
			continue
		}

		batch = append(batch, tx)
		if len(batch) == insertBatchSize {
			if err := flush(); err != nil {
				return imported, skipped, err
			}
		}
	}

	if err := flush(); err != nil {
		return imported, skipped, err
	}

	d.logger.WithField("imported", imported).WithField("skipped", skipped).
		Info("Seeded transaction store from dataset")
	return imported, skipped, nil
}

func (d *Database) parseRow(row []string, columns map[string]int) (models.Transaction, bool) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	month, ok := parseMonth(field("month"))
	if !ok {
		d.logger.WithField("month", field("month")).Debug("Dropping row with unparseable month")
		return models.Transaction{}, false
	}

	area, err := strconv.ParseFloat(field("floor_area_sqm"), 64)
	if err != nil {
		return models.Transaction{}, false
	}
	price, err := strconv.ParseFloat(field("resale_price"), 64)
	if err != nil {
		return models.Transaction{}, false
	}

	return models.Transaction{
		Town:         field("town"),
		Block:        field("block"),
		StreetName:   field("street_name"),
		FlatModel:    field("flat_model"),
		FlatType:     field("flat_type"),
		FloorAreaSqm: area,
		ResalePrice:  price,
		Month:        month,
	}, true
}

func parseMonth(value string) (time.Time, bool) {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
