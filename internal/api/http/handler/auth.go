package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/grocery-server/internal/api/http/dto"
	"github.com/dtroode/grocery-server/internal/logger"
	"github.com/dtroode/grocery-server/internal/model"
)

// AuthService defines business operations for user accounts.
type AuthService interface {
	Register(ctx context.Context, username, password string) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// Auth handles user registration and login.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a user account.
// @Summary Register a new user
// @Description Create a user with a username and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "User credentials"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {string} string "Username and password are required"
// @Failure 500 {string} string "Server error"
// @Router /user/register [post]
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewUserResponse(user))
}

// Login exchanges credentials for an access token.
// @Summary Log in
// @Description Verify credentials and issue a bearer token valid for one hour
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "User credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {string} string "Username and password are required"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 500 {string} string "Server error"
// @Router /user/login [post]
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, h.logger, err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}
