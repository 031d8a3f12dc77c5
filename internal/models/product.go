package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product represents an item in the storefront catalog
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64 // minor units (cents)
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Domain errors
var (
	ErrInvalidPrice       = errors.New("product price must be positive")
	ErrInvalidProductName = errors.New("product name cannot be empty")
)

// NewProduct creates a new product with validation
func NewProduct(name, description string, price int64, imageURL string) (*Product, error) {
	if err := validateProductInput(name, price); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// validateProductInput validates product creation parameters
func validateProductInput(name string, price int64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	if name == "" {
		return ErrInvalidProductName
	}
	return nil
}

// FormattedPrice returns the price as rendered on the page, e.g. "$29.99"
func (p *Product) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", float64(p.Price)/100.0)
}
