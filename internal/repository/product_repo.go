package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/swagshop/swagshop/internal/database"
	"github.com/swagshop/swagshop/internal/models"
)

// ProductOrder names a supported catalog ordering. Values map to fixed
// ORDER BY clauses so callers can never inject arbitrary SQL.
type ProductOrder string

// Catalog orderings
const (
	OrderNameAsc   ProductOrder = "name_asc"
	OrderNameDesc  ProductOrder = "name_desc"
	OrderPriceAsc  ProductOrder = "price_asc"
	OrderPriceDesc ProductOrder = "price_desc"
)

var orderClauses = map[ProductOrder]string{
	OrderNameAsc:   "name ASC",
	OrderNameDesc:  "name DESC",
	OrderPriceAsc:  "price ASC, name ASC",
	OrderPriceDesc: "price DESC, name ASC",
}

// ProductRepository handles database operations for catalog products
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		db: database.DB,
	}
}

// NewProductRepositoryWithDB creates a new product repository with a specific database connection
func NewProductRepositoryWithDB(db *sql.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

// CreateProduct inserts a new product into the catalog
func (r *ProductRepository) CreateProduct(product *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	_, err := r.db.Exec(query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.CreatedAt = now
	product.UpdatedAt = now

	return nil
}

// ListProducts returns the full catalog in the requested order
func (r *ProductRepository) ListProducts(order ProductOrder) ([]*models.Product, error) {
	clause, ok := orderClauses[order]
	if !ok {
		return nil, fmt.Errorf("unsupported product order: %s", order)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, price, image_url, created_at, updated_at
		FROM products
		ORDER BY %s
	`, clause)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.ImageURL,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetProductByName retrieves a single product by its display name
func (r *ProductRepository) GetProductByName(name string) (*models.Product, error) {
	query := `
		SELECT id, name, description, price, image_url, created_at, updated_at
		FROM products
		WHERE name = $1
	`

	product := &models.Product{}
	err := r.db.QueryRow(query, name).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// DeleteAllProducts empties the catalog. Used by the seed command before
// loading a fresh fixture set.
func (r *ProductRepository) DeleteAllProducts() error {
	if _, err := r.db.Exec(`DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return nil
}
