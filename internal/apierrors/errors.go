// Package apierrors defines the closed set of errors that are reported to
// API clients. Anything that is not an *APIError is an internal failure.
package apierrors

import "errors"

// Code tags an APIError with its client-facing category.
type Code int

const (
	// CodeValidation means a required field is missing or malformed.
	CodeValidation Code = iota + 1
	// CodeUnauthenticated means no bearer token was presented.
	CodeUnauthenticated
	// CodeForbidden means the bearer token is invalid or expired.
	CodeForbidden
	// CodeInvalidCredentials means the login username or password is wrong.
	CodeInvalidCredentials
	// CodeNotFound means the target row is absent or owned by someone else.
	CodeNotFound
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "validation"
	case CodeUnauthenticated:
		return "unauthenticated"
	case CodeForbidden:
		return "forbidden"
	case CodeInvalidCredentials:
		return "invalid_credentials"
	case CodeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// APIError is an error whose message is safe to show to the client.
type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// As reports whether err wraps an *APIError and returns it.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewErrMissingCredentials() *APIError {
	return &APIError{Code: CodeValidation, Message: "Username and password are required"}
}

func NewErrMissingGroceryFields() *APIError {
	return &APIError{Code: CodeValidation, Message: "Item name and quantity are required"}
}

func NewErrInvalidRequestBody() *APIError {
	return &APIError{Code: CodeValidation, Message: "Invalid request body"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Code: CodeUnauthenticated, Message: "Authorization token required"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Code: CodeForbidden, Message: "Invalid or expired token"}
}

// NewErrInvalidCredentials is shared by unknown-user and wrong-password
// outcomes so the two cannot be told apart.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Code: CodeInvalidCredentials, Message: "Invalid credentials"}
}

// NewErrGroceryItemNotFound is shared by missing and foreign-owned items.
func NewErrGroceryItemNotFound() *APIError {
	return &APIError{Code: CodeNotFound, Message: "Grocery item not found"}
}
