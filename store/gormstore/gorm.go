// Package gormstore persists products and carts in PostgreSQL through GORM.
package gormstore

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to dsn and auto-migrates the product and cart tables.
func Open(dsn string) (*store.Stores, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return New(db)
}

// New wraps an existing connection. Useful when the caller already owns a
// *gorm.DB, e.g. a different dialect in tests.
func New(db *gorm.DB) (*store.Stores, error) {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &store.Stores{
		Products: NewProductStore(db),
		Carts:    NewCartStore(db),
		Close: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
