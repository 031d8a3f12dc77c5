package handlers

import (
	"net/http"

	"github.com/swagshop/swagshop/internal/services"
)

// sessionCookieName is the cookie carrying the logged-in session ID
const sessionCookieName = "swagshop_session"

// setSessionCookie attaches the session ID to the response
func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
}

// clearSessionCookie expires the session cookie
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// currentSession resolves the request's session cookie against the auth
// service. Returns nil when the request carries no valid session.
func currentSession(r *http.Request, auth services.AuthService) *services.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	session, ok := auth.Session(cookie.Value)
	if !ok {
		return nil
	}
	return session
}

// requireSession resolves the session or redirects to the login page.
// The bool reports whether the caller may continue.
func requireSession(w http.ResponseWriter, r *http.Request, auth services.AuthService) (*services.Session, bool) {
	session := currentSession(r, auth)
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, false
	}
	return session, true
}
