package pages

import (
	"strconv"
	"strings"
)

// InventoryPage wraps the product grid screen
type InventoryPage struct {
	driver  PageDriver
	baseURL string
}

// NewInventoryPage creates an inventory page object
func NewInventoryPage(driver PageDriver, baseURL string) *InventoryPage {
	return &InventoryPage{driver: driver, baseURL: baseURL}
}

// Open navigates to the inventory page
func (p *InventoryPage) Open() error {
	return p.driver.Goto(p.baseURL + "/inventory")
}

// WaitUntilShown blocks until the browser lands on the inventory page,
// e.g. after the login redirect.
func (p *InventoryPage) WaitUntilShown() error {
	return p.driver.WaitForURL("**/inventory*")
}

// SelectSort picks a sort option by its value, e.g. "price_asc". The page
// reloads with the re-ordered grid before this returns.
func (p *InventoryPage) SelectSort(option string) error {
	if err := p.driver.SelectOption(selSortSelect, option); err != nil {
		return err
	}
	return p.driver.WaitForURL("**/inventory?sort=" + option)
}

// ItemNames returns the product names in on-screen order
func (p *InventoryPage) ItemNames() ([]string, error) {
	return p.driver.Texts(selInventoryNames)
}

// ItemPrices returns the rendered price texts in on-screen order
func (p *InventoryPage) ItemPrices() ([]string, error) {
	return p.driver.Texts(selInventoryPrice)
}

// AddToCart clicks the add button on the named product's card
func (p *InventoryPage) AddToCart(name string) error {
	return p.driver.Click(addToCartSelector(name))
}

// RemoveFromCart clicks the remove button on the named product's card
func (p *InventoryPage) RemoveFromCart(name string) error {
	return p.driver.Click(removeFromCartSelector(name))
}

// CartCount reads the header badge. A hidden badge means an empty cart.
func (p *InventoryPage) CartCount() (int, error) {
	visible, err := p.driver.IsVisible(selCartBadge)
	if err != nil {
		return 0, err
	}
	if !visible {
		return 0, nil
	}
	text, err := p.driver.Text(selCartBadge)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(text))
}

// OpenCart clicks through to the cart page
func (p *InventoryPage) OpenCart() error {
	if err := p.driver.Click(selCartLink); err != nil {
		return err
	}
	return p.driver.WaitForURL("**/cart")
}

// Logout clicks the logout link and waits for the login page
func (p *InventoryPage) Logout() error {
	if err := p.driver.Click(selLogoutLink); err != nil {
		return err
	}
	return p.driver.WaitForURL("**/login")
}
