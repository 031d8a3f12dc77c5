package models

import "errors"

// User represents a storefront account used by the demo site and its tests
type User struct {
	Username string
	Password string
	Locked   bool
}

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("username and password do not match any user")
	ErrUserLockedOut      = errors.New("sorry, this user has been locked out")
)

// Authenticate checks the supplied password against the account and reports
// whether the account may start a session
func (u *User) Authenticate(password string) error {
	if u.Password != password {
		return ErrInvalidCredentials
	}
	if u.Locked {
		return ErrUserLockedOut
	}
	return nil
}
