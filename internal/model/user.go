package model

import (
	"context"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a stored user with its password hash.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
