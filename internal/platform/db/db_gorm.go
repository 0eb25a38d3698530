// Package db opens the Postgres connection, runs migrations and translates
// store errors into the application error taxonomy.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	foodentity "cookcal_backend/internal/feature/food/domain/entity"
	foodlistentity "cookcal_backend/internal/feature/foodlist/domain/entity"
	recipeentity "cookcal_backend/internal/feature/recipes/domain/entity"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	weightentity "cookcal_backend/internal/feature/weights/domain/entity"
	"cookcal_backend/internal/platform/config"
)

// Open connects to Postgres with a retry window, then migrates and seeds.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		slog.Warn("DB connect failed, retrying...", "error", err)
		time.Sleep(3 * time.Second)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema and seeds the sentinel user row. It is shared
// with the test helpers so test databases match production DDL.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userentity.User{},
		&foodentity.Food{},
		&foodlistentity.Entry{},
		&recipeentity.Recipe{},
		&weightentity.Measurement{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return seedSentinel(db)
}

// seedSentinel inserts the reserved users row with id 0 that orphaned recipes
// fall back to. Idempotent: a present row is left untouched.
func seedSentinel(db *gorm.DB) error {
	var n int64
	if err := db.Model(&userentity.User{}).
		Where("id = ?", userentity.SentinelID).
		Count(&n).Error; err != nil {
		return fmt.Errorf("failed to probe sentinel user: %w", err)
	}
	if n > 0 {
		return nil
	}

	err := db.Exec(
		"INSERT INTO users (id, email, password, first_name, last_name, gender, age, is_nutr_adviser, created_at) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		userentity.SentinelID, "deleted@cookcal.invalid", "", "deleted", "user", 0, 1, false, time.Now(),
	).Error
	if err != nil {
		return fmt.Errorf("failed to seed sentinel user: %w", err)
	}
	return nil
}
