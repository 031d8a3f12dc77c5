// Package fixtures holds the embedded test data the demo site and its e2e
// suite share: the account list the login page accepts and the catalog the
// seed command loads. Keeping both sides on one data set means a test never
// asserts against a product the server does not know about.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/swagshop/swagshop/internal/models"
)

//go:embed data/users.json data/products.json
var dataFS embed.FS

// UserFixture is one entry of data/users.json
type UserFixture struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Locked   bool   `json:"locked"`
}

// ProductFixture is one entry of data/products.json
type ProductFixture struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	ImageURL    string `json:"image_url"`
}

var validate = validator.New()

// LoadUsers returns the fixture accounts as domain users
func LoadUsers() ([]models.User, error) {
	var entries []UserFixture
	if err := loadJSON("data/users.json", &entries); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid user fixture at index %d: %w", i, err)
		}
		users = append(users, models.User{
			Username: entry.Username,
			Password: entry.Password,
			Locked:   entry.Locked,
		})
	}
	return users, nil
}

// LoadProducts returns the fixture catalog as domain products
func LoadProducts() ([]*models.Product, error) {
	var entries []ProductFixture
	if err := loadJSON("data/products.json", &entries); err != nil {
		return nil, err
	}

	products := make([]*models.Product, 0, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid product fixture at index %d: %w", i, err)
		}
		product, err := models.NewProduct(entry.Name, entry.Description, entry.Price, entry.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("invalid product fixture at index %d: %w", i, err)
		}
		products = append(products, product)
	}
	return products, nil
}

// loadJSON reads one embedded fixture file into target
func loadJSON(path string, target any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return nil
}
