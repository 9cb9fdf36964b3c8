package database

import (
	"fmt"

	"gorm.io/gorm"
	"social-feed-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Tables, indexes, and foreign key constraints come from the struct tags in
// the domain package.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Group{},
		&domain.Membership{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Reaction{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
