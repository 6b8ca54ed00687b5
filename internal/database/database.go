package database

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hdbvalue/server/internal/models"
)

var storeSequence atomic.Int64

// Database wraps the in-memory transaction store. The historical dataset is
// read-only for the lifetime of the process: it is seeded once from the CSV
// at startup and only queried afterwards.
type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDatabase(logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	// Named in-memory store with a shared cache, so every pooled
	// connection sees the same data but separate Database instances
	// stay isolated.
	dsn := fmt.Sprintf("file:txstore%d?mode=memory&cache=shared", storeSequence.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return nil, err
	}

	return &Database{db: db, logger: logger}, nil
}

// GetDB exposes the underlying gorm handle.
func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// RecentTransactions returns at most limit transactions for the given town,
// most recent month first. Town matching is exact and case-sensitive.
func (d *Database) RecentTransactions(town string, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := d.db.
		Where("town = ?", town).
		Order("month DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// CountTransactions returns the number of seeded transactions.
func (d *Database) CountTransactions() (int64, error) {
	var count int64
	if err := d.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
