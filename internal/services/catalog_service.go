package services

import (
	"fmt"

	"github.com/swagshop/swagshop/internal/models"
	"github.com/swagshop/swagshop/internal/repository"
)

// ProductRepository defines the interface for catalog persistence
type ProductRepository interface {
	CreateProduct(product *models.Product) error
	ListProducts(order repository.ProductOrder) ([]*models.Product, error)
	GetProductByName(name string) (*models.Product, error)
	DeleteAllProducts() error
}

// CatalogService handles catalog business logic
type CatalogService interface {
	List(sort string) ([]*models.Product, error)
	Get(name string) (*models.Product, error)
	Replace(products []*models.Product) error
}

// DefaultSort is the inventory ordering when no sort parameter is given
const DefaultSort = string(repository.OrderNameAsc)

// CatalogServiceImpl implements CatalogService
type CatalogServiceImpl struct {
	productRepo ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo ProductRepository) CatalogService {
	return &CatalogServiceImpl{
		productRepo: productRepo,
	}
}

// List returns the catalog in the requested order. An empty sort value falls
// back to the default; an unknown one is rejected so a typo in a query
// parameter never silently renders an unspecified order.
func (s *CatalogServiceImpl) List(sort string) ([]*models.Product, error) {
	if sort == "" {
		sort = DefaultSort
	}

	order := repository.ProductOrder(sort)
	switch order {
	case repository.OrderNameAsc, repository.OrderNameDesc,
		repository.OrderPriceAsc, repository.OrderPriceDesc:
	default:
		return nil, fmt.Errorf("unknown sort option: %s", sort)
	}

	products, err := s.productRepo.ListProducts(order)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get retrieves a single product by display name
func (s *CatalogServiceImpl) Get(name string) (*models.Product, error) {
	product, err := s.productRepo.GetProductByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Replace empties the catalog and loads the given products
func (s *CatalogServiceImpl) Replace(products []*models.Product) error {
	if err := s.productRepo.DeleteAllProducts(); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}
	for _, product := range products {
		if err := s.productRepo.CreateProduct(product); err != nil {
			return fmt.Errorf("failed to create product %s: %w", product.Name, err)
		}
	}
	return nil
}
