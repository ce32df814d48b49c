package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/tdo/internal/models"
)

var DB *gorm.DB

// Initialize opens the database at dbPath, creating its directory, and runs migrations
func Initialize(dbPath string) error {
	if DB != nil {
		return nil
	}

	db, err := Open(dbPath)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open connects to the SQLite file at dbPath and migrates the schema
func Open(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is required")
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// runMigrations creates/updates the database schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Area{},
		&models.Project{},
		&models.Task{},
		&models.Tag{},
		&models.TaskTag{},
	)
}

// Transaction runs fn as a single read-modify-write unit against DB. When
// backups are enabled the database is copied first; a failed copy aborts the write.
func Transaction(fn func(tx *gorm.DB) error) error {
	if DB == nil {
		return fmt.Errorf("database is not initialized")
	}
	if backupDir != "" && backupKeep > 0 {
		if _, err := Backup(DB, backupDir, backupKeep, time.Now()); err != nil {
			return err
		}
	}
	return DB.Transaction(fn)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		DB = nil
		return sqlDB.Close()
	}
	return nil
}
