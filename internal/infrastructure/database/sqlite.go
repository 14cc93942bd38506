package database

import (
	"fmt"
	"log"

	"github.com/santhoshsharuk/billing-api/internal/config"
	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates or opens the local SQLite database file.
// Opening is idempotent: an existing file is reused as-is, schema creation
// happens once via AutoMigrate and is skipped on subsequent opens.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Category deletion leaves dangling product references on purpose;
		// a real FK constraint would block it.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under the single-user workload.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Opened local database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate creates any missing collections. Existing data is never
// transformed; migration between schema versions only adds stores.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.Invoice{},
		&entity.LineItem{},
		&entity.Customer{},
		&entity.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
