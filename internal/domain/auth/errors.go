package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmailAlreadyInUse  = errors.New("email already registered")
	ErrNoSession          = errors.New("no signed-in user, please sign in again")
	ErrAdminOnly          = errors.New("administrator privilege required")
)
