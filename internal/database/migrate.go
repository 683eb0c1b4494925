package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/culina/backend/internal/models"
)

// Migrate applies the schema. The partial unique index is the authoritative
// guard against duplicate live titles; its WHERE clause excludes soft-deleted
// rows so their titles become reusable. Both Postgres and SQLite accept the
// same syntax.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Recipe{},
		&models.DietaryPreference{},
		&models.ForbiddenIngredient{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_recipes_owner_title_live
		ON recipes (user_id, title)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		return fmt.Errorf("failed to create unique title index: %w", err)
	}

	return nil
}
