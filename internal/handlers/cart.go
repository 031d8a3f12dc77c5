package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/swagshop/swagshop/internal/services"
)

// CartHandler renders the cart page
type CartHandler struct {
	template *template.Template
	catalog  services.CatalogService
	auth     services.AuthService
	cart     services.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(templatePath string, catalog services.CatalogService, auth services.AuthService, cart services.CartService) (*CartHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CartHandler{
		template: tmpl,
		catalog:  catalog,
		auth:     auth,
		cart:     cart,
	}, nil
}

// cartItem is one product as rendered on the cart page
type cartItem struct {
	Name        string
	Description string
	Price       string
}

// cartView is the template data for the cart page
type cartView struct {
	Username  string
	Items     []cartItem
	CartCount int
}

// ServeHTTP handles GET /cart
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := requireSession(w, r, h.auth)
	if !ok {
		return
	}

	view := cartView{
		Username:  session.Username,
		CartCount: h.cart.Count(session.ID),
	}
	for _, name := range h.cart.Items(session.ID) {
		product, err := h.catalog.Get(name)
		if err != nil {
			// A product removed from the catalog mid-session; skip it
			log.Printf("Cart references unknown product %q: %v", name, err)
			continue
		}
		view.Items = append(view.Items, cartItem{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.FormattedPrice(),
		})
	}

	if err := h.template.Execute(w, view); err != nil {
		log.Printf("Error rendering cart page: %v", err)
	}
}

// CartModifyHandler handles POST /cart/add and POST /cart/remove
type CartModifyHandler struct {
	catalog services.CatalogService
	auth    services.AuthService
	cart    services.CartService
	remove  bool
}

// NewCartAddHandler creates the handler for POST /cart/add
func NewCartAddHandler(catalog services.CatalogService, auth services.AuthService, cart services.CartService) *CartModifyHandler {
	return &CartModifyHandler{catalog: catalog, auth: auth, cart: cart}
}

// NewCartRemoveHandler creates the handler for POST /cart/remove
func NewCartRemoveHandler(catalog services.CatalogService, auth services.AuthService, cart services.CartService) *CartModifyHandler {
	return &CartModifyHandler{catalog: catalog, auth: auth, cart: cart, remove: true}
}

// ServeHTTP adds or removes the posted product and returns to the page the
// form was submitted from.
func (h *CartModifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := requireSession(w, r, h.auth)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	if name == "" {
		http.Error(w, "Missing product name", http.StatusBadRequest)
		return
	}

	if h.remove {
		h.cart.Remove(session.ID, name)
	} else {
		if _, err := h.catalog.Get(name); err != nil {
			http.Error(w, "Unknown product", http.StatusNotFound)
			return
		}
		h.cart.Add(session.ID, name)
	}

	// Only same-site paths are honored as a return target
	redirect := r.PostFormValue("return_to")
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		redirect = "/inventory"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
