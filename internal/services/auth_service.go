package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/swagshop/swagshop/internal/models"
)

// AuthService handles login, logout and session lookup
type AuthService interface {
	Login(username, password string) (string, error)
	Session(sessionID string) (*Session, bool)
	Logout(sessionID string)
}

// Session is one logged-in browser session
type Session struct {
	ID       string
	Username string
}

// AuthServiceImpl implements AuthService with in-memory sessions. The demo
// site deliberately keeps sessions out of the database: every restart starts
// the e2e suite from a clean slate.
type AuthServiceImpl struct {
	mu       sync.RWMutex
	users    map[string]models.User
	sessions map[string]*Session
}

// NewAuthService creates a new auth service over the given accounts
func NewAuthService(users []models.User) *AuthServiceImpl {
	byName := make(map[string]models.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &AuthServiceImpl{
		users:    byName,
		sessions: make(map[string]*Session),
	}
}

// Login checks credentials and starts a new session on success
func (s *AuthServiceImpl) Login(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return "", models.ErrInvalidCredentials
	}
	if err := user.Authenticate(password); err != nil {
		return "", fmt.Errorf("login refused for %s: %w", username, err)
	}

	session := &Session{
		ID:       uuid.New().String(),
		Username: username,
	}
	s.sessions[session.ID] = session
	return session.ID, nil
}

// Session returns the session for the given ID, if one exists
func (s *AuthServiceImpl) Session(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	return session, ok
}

// Logout ends the session. Unknown IDs are a no-op.
func (s *AuthServiceImpl) Logout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}
