package domain

import (
	"errors"
	"strings"
)

// Roles an account can hold.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// MinPasswordLength applies to registration only; seeded accounts bypass it.
const MinPasswordLength = 6

var (
	ErrBlankUsername = errors.New("email is required")
	ErrShortPassword = errors.New("password must be at least 6 characters long")
)

// Account is a login identity. Username doubles as the email address and is
// stored normalized; PasswordHash never holds plaintext.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Enabled      bool
}

// IsAdmin reports whether the account holds the ADMIN role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// NormalizeUsername trims and lower-cases the login key so lookups are
// case-insensitive.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
