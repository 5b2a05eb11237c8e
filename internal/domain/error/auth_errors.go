// Package error defines domain-specific errors for the Personal Finance application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUT-010003"
)
