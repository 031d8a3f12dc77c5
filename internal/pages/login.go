package pages

// LoginPage wraps the storefront login screen
type LoginPage struct {
	driver  PageDriver
	baseURL string
}

// NewLoginPage creates a login page object
func NewLoginPage(driver PageDriver, baseURL string) *LoginPage {
	return &LoginPage{driver: driver, baseURL: baseURL}
}

// Open navigates to the login page
func (p *LoginPage) Open() error {
	return p.driver.Goto(p.baseURL + "/login")
}

// SubmitCredentials fills the form and clicks the login button. It does not
// wait for the outcome; callers decide whether they expect a redirect or an
// error banner.
func (p *LoginPage) SubmitCredentials(username, password string) error {
	if err := p.driver.Fill(selUsername, username); err != nil {
		return err
	}
	if err := p.driver.Fill(selPassword, password); err != nil {
		return err
	}
	return p.driver.Click(selLoginButton)
}

// ErrorMessage returns the text of the error banner
func (p *LoginPage) ErrorMessage() (string, error) {
	return p.driver.Text(selLoginError)
}

// HasError reports whether the error banner is shown
func (p *LoginPage) HasError() (bool, error) {
	return p.driver.IsVisible(selLoginError)
}
