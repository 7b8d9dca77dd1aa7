package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/logger"
	"github.com/dtroode/grocery-server/internal/model"
)

const bearerPrefix = "Bearer "

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (int64, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token. A missing token is
// answered with 401, a bad or expired one with 403.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authenticateUser(r.Context(), bearerToken(r))
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			writeAuthError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, apierrors.NewErrMissingAuthorizationToken()
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil {
		if apiErr, ok := apierrors.As(err); ok && apiErr.Code == apierrors.CodeUnauthenticated {
			return 0, apiErr
		}
		return 0, apierrors.NewErrInvalidAuthorizationToken()
	}

	if userID == 0 {
		return 0, apierrors.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header,
// or an empty string for any other shape.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func writeAuthError(w http.ResponseWriter, err error) {
	status := http.StatusForbidden
	apiErr, ok := apierrors.As(err)
	if ok && apiErr.Code == apierrors.CodeUnauthenticated {
		status = http.StatusUnauthorized
	}
	if !ok {
		apiErr = apierrors.NewErrInvalidAuthorizationToken()
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(apiErr.Message))
}
