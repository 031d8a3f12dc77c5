package pages

import "fmt"

// CSS selectors matching the storefront templates. Kept in one place so a
// template change breaks exactly one file.

// Login page
const (
	selUsername    = "#username"
	selPassword    = "#password"
	selLoginButton = "#login-button"
	selLoginError  = ".error-message"
)

// Shared header
const (
	selCartLink   = "#cart-link"
	selCartBadge  = ".cart-badge"
	selLogoutLink = "#logout-link"
)

// Inventory page
const (
	selSortSelect     = "#sort-select"
	selInventoryItem  = ".inventory-item"
	selInventoryNames = ".inventory-item-name"
	selInventoryPrice = ".inventory-item-price"
)

// Cart page
const (
	selCartItemNames  = ".cart-item-name"
	selCartItemPrices = ".cart-item-price"
	selCartEmpty      = ".cart-empty"
	selContinueShop   = "#continue-shopping"
)

// addToCartSelector targets the add button inside the item card showing the
// given product name. Uses Playwright's :has/:text-is CSS extensions.
func addToCartSelector(name string) string {
	return fmt.Sprintf(`.inventory-item:has(.inventory-item-name:text-is(%q)) .btn-add-to-cart`, name)
}

// removeFromCartSelector targets the remove button for a product, on either
// the inventory or the cart page.
func removeFromCartSelector(name string) string {
	return fmt.Sprintf(
		`:is(.inventory-item:has(.inventory-item-name:text-is(%[1]q)), .cart-item:has(.cart-item-name:text-is(%[1]q))) .btn-remove-from-cart`,
		name,
	)
}
