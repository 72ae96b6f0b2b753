package errors

import (
	"errors"
	"net/http"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrEmptyAuth        = errors.New("missing authorization")
	ErrTokenInvalid     = errors.New("invalid token")
)

// StatusCode maps the service error taxonomy to HTTP status codes. Store
// failures and anything unrecognized surface as 500 so callers know a retry
// with backoff is safe.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrCartItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrEmptyAuth),
		errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
