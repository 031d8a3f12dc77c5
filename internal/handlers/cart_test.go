package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/swagshop/swagshop/internal/models"
	"github.com/swagshop/swagshop/internal/services"
)

const cartTemplate = "../../templates/cart.html"

func TestCartHandler_EmptyCart(t *testing.T) {
	auth := newTestAuth()
	handler, err := NewCartHandler(cartTemplate, testCatalog(), auth, services.NewCartService())
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}

	req, _ := loggedInRequest(t, auth, "/cart")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your cart is empty") {
		t.Error("Expected empty cart message")
	}
}

func TestCartHandler_RendersItems(t *testing.T) {
	auth := newTestAuth()
	cart := services.NewCartService()
	catalog := &MockCatalogService{
		GetFunc: func(name string) (*models.Product, error) {
			return &models.Product{Name: name, Price: 999}, nil
		},
	}

	handler, err := NewCartHandler(cartTemplate, catalog, auth, cart)
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}

	req, sessionID := loggedInRequest(t, auth, "/cart")
	cart.Add(sessionID, "Bike Light")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `class="cart-item-name">Bike Light<`) {
		t.Error("Expected cart item name on page")
	}
	if !strings.Contains(body, `class="cart-item-price">$9.99<`) {
		t.Error("Expected cart item price on page")
	}
}

func TestCartHandler_RequiresLogin(t *testing.T) {
	handler, err := NewCartHandler(cartTemplate, testCatalog(), newTestAuth(), services.NewCartService())
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("Expected status 303, got %d", rec.Code)
	}
}

func TestCartModifyHandler_AddAndRemove(t *testing.T) {
	auth := newTestAuth()
	cart := services.NewCartService()
	catalog := testCatalog()

	sessionID, err := auth.Login("standard_user", "secret_sauce")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	withSession := func(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	add := NewCartAddHandler(catalog, auth, cart)
	rec := withSession(add, "/cart/add", url.Values{"name": {"Bike Light"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/inventory" {
		t.Errorf("Expected redirect to /inventory, got %s", got)
	}
	if cart.Count(sessionID) != 1 {
		t.Errorf("Expected 1 item in cart, got %d", cart.Count(sessionID))
	}

	remove := NewCartRemoveHandler(catalog, auth, cart)
	rec = withSession(remove, "/cart/remove", url.Values{
		"name":      {"Bike Light"},
		"return_to": {"/cart"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/cart" {
		t.Errorf("Expected redirect to /cart, got %s", got)
	}
	if cart.Count(sessionID) != 0 {
		t.Errorf("Expected empty cart, got %d items", cart.Count(sessionID))
	}
}

func TestCartModifyHandler_UnknownProduct(t *testing.T) {
	auth := newTestAuth()
	catalog := &MockCatalogService{
		GetFunc: func(name string) (*models.Product, error) {
			return nil, models.ErrInvalidProductName
		},
	}

	sessionID, err := auth.Login("standard_user", "secret_sauce")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	add := NewCartAddHandler(catalog, auth, services.NewCartService())
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader("name=Nonexistent"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	rec := httptest.NewRecorder()
	add.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestCartModifyHandler_MissingName(t *testing.T) {
	auth := newTestAuth()
	sessionID, err := auth.Login("standard_user", "secret_sauce")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	add := NewCartAddHandler(testCatalog(), auth, services.NewCartService())
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	rec := httptest.NewRecorder()
	add.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCartModifyHandler_ExternalRedirectIsRejected(t *testing.T) {
	auth := newTestAuth()
	cart := services.NewCartService()
	sessionID, err := auth.Login("standard_user", "secret_sauce")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	add := NewCartAddHandler(testCatalog(), auth, cart)
	form := url.Values{
		"name":      {"Bike Light"},
		"return_to": {"https://evil.example.com/"},
	}
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	rec := httptest.NewRecorder()
	add.ServeHTTP(rec, req)

	if got := rec.Header().Get("Location"); got != "/inventory" {
		t.Errorf("Expected external return_to to fall back to /inventory, got %s", got)
	}
}
