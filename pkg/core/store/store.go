package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	bookmodel "book-hub/pkg/core/book/model"
	cartmodel "book-hub/pkg/core/cart/model"
	srmodel "book-hub/pkg/core/servicerequest/model"
	usermodel "book-hub/pkg/core/user/model"
)

// AutoMigrate creates the four tables and their indexes if absent.
func AutoMigrate(db *gorm.DB) error {
	migrations := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"users", usermodel.AutoMigrate},
		{"books", bookmodel.AutoMigrate},
		{"cart_items", cartmodel.AutoMigrate},
		{"service_requests", srmodel.AutoMigrate},
	}
	for _, m := range migrations {
		if err := m.fn(db); err != nil {
			return fmt.Errorf("auto migrate %s: %w", m.name, err)
		}
	}
	return nil
}

// Ping checks if the database connection is alive.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
