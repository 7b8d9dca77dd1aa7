package handler

import (
	"net/http"

	"github.com/dtroode/grocery-server/internal/apierrors"
	"github.com/dtroode/grocery-server/internal/logger"
)

const serverErrorMessage = "Server error"

func statusForCode(code apierrors.Code) int {
	switch code {
	case apierrors.CodeValidation:
		return http.StatusBadRequest
	case apierrors.CodeUnauthenticated, apierrors.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case apierrors.CodeForbidden:
		return http.StatusForbidden
	case apierrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes err as a plain-text response. Errors outside the
// apierrors taxonomy are logged and reported as a generic server error.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	if apiErr, ok := apierrors.As(err); ok {
		writeText(w, statusForCode(apiErr.Code), apiErr.Message)
		return
	}

	log.Error("HTTP handler: request failed",
		"error", err.Error())
	writeText(w, http.StatusInternalServerError, serverErrorMessage)
}
