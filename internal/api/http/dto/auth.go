package dto

import (
	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/model"
)

// CredentialsRequest is the body of the register and login endpoints.
type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw123"`
}

// Validate reports a validation error when either field is empty.
func (r CredentialsRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return apierrors.NewErrMissingCredentials()
	}
	return nil
}

// UserResponse is the public view of a registered user.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

func NewUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}
