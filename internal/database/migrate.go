package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutriquery/backend/internal/models"
)

// RunMigrations brings the schema up to date. SQLite databases (unit
// tests) use GORM auto-migration; postgres executes the SQL files in
// migrationsDir in name order, recording each applied file in a
// migrations table so reruns are no-ops.
func RunMigrations(db *gorm.DB, migrationsDir string, logger *zap.Logger) error {
	if db.Dialector.Name() == "sqlite" {
		return db.AutoMigrate(
			&models.DietaryRestriction{},
			&models.Ingredient{},
			&models.Recipe{},
			&models.RecipeIngredient{},
		)
	}

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		var count int64
		if err := db.Table("migrations").Where("name = ?", entry.Name()).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			logger.Debug("skipping applied migration", zap.String("migration", entry.Name()))
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if err := db.Exec(string(content)).Error; err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}

		if err := db.Exec("INSERT INTO migrations (name) VALUES (?)", entry.Name()).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", entry.Name(), err)
		}

		logger.Info("applied migration", zap.String("migration", entry.Name()))
	}

	return nil
}
