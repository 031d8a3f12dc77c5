package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/swagshop/swagshop/internal/services"
)

// InventoryHandler renders the product grid with its sort selector
type InventoryHandler struct {
	template *template.Template
	catalog  services.CatalogService
	auth     services.AuthService
	cart     services.CartService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(templatePath string, catalog services.CatalogService, auth services.AuthService, cart services.CartService) (*InventoryHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &InventoryHandler{
		template: tmpl,
		catalog:  catalog,
		auth:     auth,
		cart:     cart,
	}, nil
}

// inventoryItem is one product as rendered on the inventory page
type inventoryItem struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	InCart      bool
}

// inventoryView is the template data for the inventory page
type inventoryView struct {
	Username  string
	Sort      string
	Items     []inventoryItem
	CartCount int
}

// ServeHTTP handles GET /inventory. The sort query parameter selects the
// rendered order; an unknown value is a 400 rather than an arbitrary order.
func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := requireSession(w, r, h.auth)
	if !ok {
		return
	}

	sort := r.URL.Query().Get("sort")
	products, err := h.catalog.List(sort)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		http.Error(w, "Unknown sort option", http.StatusBadRequest)
		return
	}

	if sort == "" {
		sort = services.DefaultSort
	}

	inCart := make(map[string]bool)
	for _, name := range h.cart.Items(session.ID) {
		inCart[name] = true
	}

	view := inventoryView{
		Username:  session.Username,
		Sort:      sort,
		CartCount: h.cart.Count(session.ID),
	}
	for _, product := range products {
		view.Items = append(view.Items, inventoryItem{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.FormattedPrice(),
			ImageURL:    product.ImageURL,
			InCart:      inCart[product.Name],
		})
	}

	if err := h.template.Execute(w, view); err != nil {
		log.Printf("Error rendering inventory page: %v", err)
	}
}
