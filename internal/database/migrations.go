package database

import (
	"fmt"
	"log"
)

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	// Create products table
	createProductsTable := `
	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price INTEGER NOT NULL,
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
	CREATE INDEX IF NOT EXISTS idx_products_price ON products(price);
	`

	_, err := DB.Exec(createProductsTable)
	if err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
