package db

import (
	"fmt"

	"github.com/zulandar/konoha/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Task{},
		&models.Character{},
		&models.Jutsu{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table and recreates the schema empty.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.Jutsu{}, &models.Character{}, &models.Task{}); err != nil {
		return fmt.Errorf("db: drop tables: %w", err)
	}
	return AutoMigrate(db)
}
