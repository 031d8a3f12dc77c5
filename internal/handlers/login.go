package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/swagshop/swagshop/internal/models"
	"github.com/swagshop/swagshop/internal/services"
)

// LoginHandler serves the login form and processes login attempts
type LoginHandler struct {
	template *template.Template
	auth     services.AuthService
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(templatePath string, auth services.AuthService) (*LoginHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &LoginHandler{
		template: tmpl,
		auth:     auth,
	}, nil
}

// loginView is the template data for the login page
type loginView struct {
	Error    string
	Username string
}

// ServeHTTP handles GET /login (render form) and POST /login (attempt login)
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, loginView{})
	case http.MethodPost:
		h.login(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	sessionID, err := h.auth.Login(username, password)
	if err != nil {
		log.Printf("Login refused for %q: %v", username, err)
		w.WriteHeader(http.StatusUnauthorized)
		h.render(w, loginView{
			Error:    loginErrorMessage(err),
			Username: username,
		})
		return
	}

	setSessionCookie(w, sessionID)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

func (h *LoginHandler) render(w http.ResponseWriter, view loginView) {
	if err := h.template.Execute(w, view); err != nil {
		log.Printf("Error rendering login page: %v", err)
	}
}

// loginErrorMessage maps an auth error to the banner text shown on the page
func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrUserLockedOut):
		return "Sorry, this user has been locked out."
	default:
		return "Username and password do not match any user in this service."
	}
}

// LogoutHandler ends the current session and returns to the login page
type LogoutHandler struct {
	auth services.AuthService
}

// NewLogoutHandler creates a new LogoutHandler
func NewLogoutHandler(auth services.AuthService) *LogoutHandler {
	return &LogoutHandler{auth: auth}
}

// ServeHTTP handles GET /logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.auth.Logout(cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
