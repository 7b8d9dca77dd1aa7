package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/grocery-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const (
	queryCreateUser = `INSERT INTO users (username, password_hash)
			  VALUES ($1, $2)
			  RETURNING id, username, password_hash`

	queryGetUserByUsername = `SELECT id, username, password_hash
			  FROM users WHERE username = $1`
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a user. A duplicate username surfaces as the raw constraint error.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, queryCreateUser, username, passwordHash).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, queryGetUserByUsername, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}
