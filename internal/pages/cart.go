package pages

// CartPage wraps the cart screen
type CartPage struct {
	driver  PageDriver
	baseURL string
}

// NewCartPage creates a cart page object
func NewCartPage(driver PageDriver, baseURL string) *CartPage {
	return &CartPage{driver: driver, baseURL: baseURL}
}

// Open navigates to the cart page
func (p *CartPage) Open() error {
	return p.driver.Goto(p.baseURL + "/cart")
}

// ItemNames returns the carted product names in on-screen order
func (p *CartPage) ItemNames() ([]string, error) {
	return p.driver.Texts(selCartItemNames)
}

// ItemPrices returns the rendered price texts in on-screen order
func (p *CartPage) ItemPrices() ([]string, error) {
	return p.driver.Texts(selCartItemPrices)
}

// Remove clicks the remove button for the named product
func (p *CartPage) Remove(name string) error {
	return p.driver.Click(removeFromCartSelector(name))
}

// IsEmpty reports whether the empty-cart message is shown
func (p *CartPage) IsEmpty() (bool, error) {
	return p.driver.IsVisible(selCartEmpty)
}

// ContinueShopping returns to the inventory page
func (p *CartPage) ContinueShopping() error {
	if err := p.driver.Click(selContinueShop); err != nil {
		return err
	}
	return p.driver.WaitForURL("**/inventory*")
}
