package pages

import (
	"github.com/playwright-community/playwright-go"
)

// navigationTimeout bounds every WaitForURL call so a missed redirect fails
// the test instead of hanging it.
const navigationTimeout = 5000 // milliseconds

// PlaywrightDriver implements PageDriver over a Playwright page
type PlaywrightDriver struct {
	page playwright.Page
}

// NewPlaywrightDriver wraps an existing Playwright page
func NewPlaywrightDriver(page playwright.Page) *PlaywrightDriver {
	return &PlaywrightDriver{page: page}
}

// Page exposes the underlying Playwright page for the rare step a page
// object does not cover, such as screenshots on failure.
func (d *PlaywrightDriver) Page() playwright.Page {
	return d.page
}

func (d *PlaywrightDriver) Goto(url string) error {
	_, err := d.page.Goto(url)
	return err
}

func (d *PlaywrightDriver) Click(selector string) error {
	return d.page.Locator(selector).First().Click()
}

func (d *PlaywrightDriver) Fill(selector, value string) error {
	return d.page.Locator(selector).Fill(value)
}

func (d *PlaywrightDriver) SelectOption(selector, value string) error {
	_, err := d.page.Locator(selector).SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return err
}

func (d *PlaywrightDriver) Text(selector string) (string, error) {
	return d.page.Locator(selector).First().TextContent()
}

func (d *PlaywrightDriver) Texts(selector string) ([]string, error) {
	return d.page.Locator(selector).AllTextContents()
}

func (d *PlaywrightDriver) IsVisible(selector string) (bool, error) {
	return d.page.Locator(selector).First().IsVisible()
}

func (d *PlaywrightDriver) URL() string {
	return d.page.URL()
}

func (d *PlaywrightDriver) WaitForURL(pattern string) error {
	return d.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(navigationTimeout),
	})
}
