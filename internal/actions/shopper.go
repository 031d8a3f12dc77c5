// Package actions composes page objects into user workflows. Tests call
// these instead of driving pages step by step, so a flow change (say, an
// extra confirmation screen) is absorbed here rather than in every spec.
package actions

import (
	"fmt"

	"github.com/swagshop/swagshop/internal/pages"
	"github.com/swagshop/swagshop/internal/verify"
)

// Shopper bundles the page objects for one browser session
type Shopper struct {
	Login     *pages.LoginPage
	Inventory *pages.InventoryPage
	Cart      *pages.CartPage
}

// NewShopper creates the page objects over one driver. The caller owns the
// driver and its lifetime; nothing here is a singleton.
func NewShopper(driver pages.PageDriver, baseURL string) *Shopper {
	return &Shopper{
		Login:     pages.NewLoginPage(driver, baseURL),
		Inventory: pages.NewInventoryPage(driver, baseURL),
		Cart:      pages.NewCartPage(driver, baseURL),
	}
}

// LogIn signs in and waits for the inventory page
func (s *Shopper) LogIn(username, password string) error {
	if err := s.Login.Open(); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}
	if err := s.Login.SubmitCredentials(username, password); err != nil {
		return fmt.Errorf("failed to submit credentials: %w", err)
	}
	if err := s.Inventory.WaitUntilShown(); err != nil {
		return fmt.Errorf("login did not reach the inventory page: %w", err)
	}
	return nil
}

// FailedLoginMessage attempts a login expected to fail and returns the text
// of the error banner.
func (s *Shopper) FailedLoginMessage(username, password string) (string, error) {
	if err := s.Login.Open(); err != nil {
		return "", fmt.Errorf("failed to open login page: %w", err)
	}
	if err := s.Login.SubmitCredentials(username, password); err != nil {
		return "", fmt.Errorf("failed to submit credentials: %w", err)
	}
	visible, err := s.Login.HasError()
	if err != nil {
		return "", err
	}
	if !visible {
		return "", fmt.Errorf("expected an error banner after refused login")
	}
	return s.Login.ErrorMessage()
}

// SortInventoryBy re-orders the grid to match the given spec
func (s *Shopper) SortInventoryBy(spec verify.SortSpec) error {
	option, err := sortOption(spec)
	if err != nil {
		return err
	}
	return s.Inventory.SelectSort(option)
}

// VerifyInventoryOrder captures the rendered values for the spec's key and
// checks their order. A NotSorted verdict is returned to the caller for its
// own failure message; a ParseError propagates as an error.
func (s *Shopper) VerifyInventoryOrder(spec verify.SortSpec) (verify.Verdict, error) {
	var observed []string
	var err error

	switch spec.Key {
	case verify.KeyPrice:
		observed, err = s.Inventory.ItemPrices()
	default:
		observed, err = s.Inventory.ItemNames()
	}
	if err != nil {
		return verify.Verdict{}, fmt.Errorf("failed to capture rendered values: %w", err)
	}

	return verify.Verify(observed, spec)
}

// AddToCart adds the named products from the inventory page
func (s *Shopper) AddToCart(names ...string) error {
	for _, name := range names {
		if err := s.Inventory.AddToCart(name); err != nil {
			return fmt.Errorf("failed to add %q to cart: %w", name, err)
		}
	}
	return nil
}

// CartBadgeCount reads the header badge from the inventory page
func (s *Shopper) CartBadgeCount() (int, error) {
	return s.Inventory.CartCount()
}

// OpenCart navigates to the cart and returns the carted product names
func (s *Shopper) OpenCart() ([]string, error) {
	if err := s.Inventory.OpenCart(); err != nil {
		return nil, fmt.Errorf("failed to open cart: %w", err)
	}
	return s.Cart.ItemNames()
}

var sortOptions = map[verify.SortSpec]string{
	{Key: verify.KeyName, Direction: verify.Ascending}:   "name_asc",
	{Key: verify.KeyName, Direction: verify.Descending}:  "name_desc",
	{Key: verify.KeyPrice, Direction: verify.Ascending}:  "price_asc",
	{Key: verify.KeyPrice, Direction: verify.Descending}: "price_desc",
}

// sortOption maps a verification spec to the sort select's option value
func sortOption(spec verify.SortSpec) (string, error) {
	option, ok := sortOptions[spec]
	if !ok {
		return "", fmt.Errorf("no sort option for key %q direction %q", spec.Key, spec.Direction)
	}
	return option, nil
}
