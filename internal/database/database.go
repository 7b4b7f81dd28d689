package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tenant-billing-svc/internal/config"
	"tenant-billing-svc/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection from config
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate runs schema migrations for all models
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Tenant{},
		&models.Bill{},
	)
}

// Close closes the underlying sql connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
