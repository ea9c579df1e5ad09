package database

import (
	"fmt"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the schema. The handle
// is returned to the caller; no package-level global holds it.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// ✅ REQUIRED for gen_random_uuid()
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&users.AdminUser{},
		&catalog.PaintingRecord{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate error: %w", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
	return db, nil
}
