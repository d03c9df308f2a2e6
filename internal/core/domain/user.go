package domain

import (
	"strings"
	"time"
)

// User models an account holder. Login is stored normalized and is the
// uniqueness key; the raw password never leaves the auth service.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the view of a user safe to return to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

// Public strips everything but the id and login.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Login: u.Login}
}

// NormalizeLogin trims surrounding whitespace and lowercases the login.
// All lookups and writes go through the normalized form.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}
