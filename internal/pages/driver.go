// Package pages holds the page objects for the Swag Shop storefront. Each
// page object is a selector table plus thin wrappers over a PageDriver, so
// tests read as user steps instead of raw element queries.
package pages

// PageDriver is the capability surface page objects need from the browser
// automation layer. Page objects compose a driver instead of inheriting
// from a shared base page; the one real implementation wraps Playwright.
type PageDriver interface {
	// Goto navigates to an absolute URL and waits for the load to settle.
	Goto(url string) error
	// Click clicks the first element matching selector.
	Click(selector string) error
	// Fill replaces the value of the input matching selector.
	Fill(selector, value string) error
	// SelectOption picks the option with the given value in a select element.
	SelectOption(selector, value string) error
	// Text returns the text content of the first match.
	Text(selector string) (string, error)
	// Texts returns the text content of every match, in document order.
	Texts(selector string) ([]string, error)
	// IsVisible reports whether the first match is visible. A selector with
	// no matches is not an error; it is simply not visible.
	IsVisible(selector string) (bool, error)
	// URL returns the page's current URL.
	URL() string
	// WaitForURL blocks until the page URL matches the glob pattern.
	WaitForURL(pattern string) error
}
