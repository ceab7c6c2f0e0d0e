package auth

import "errors"

// Common authentication errors
var (
	// ErrInvalidToken indicates the token is malformed, unsigned or signed
	// with another key
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is returned by Login for any username or
	// password mismatch. It never says which one was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
